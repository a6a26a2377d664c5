package exporter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetlocale/internal/exporter"
	"github.com/dmitrymomot/sheetlocale/pkg/locale"
	"github.com/dmitrymomot/sheetlocale/pkg/logger"
	"github.com/dmitrymomot/sheetlocale/pkg/storage"
)

const sheetCSV = "key,en,ru\n" +
	"menu.title,Menu,Меню\n" +
	"menu.items.home,Home,Главная\n" +
	"# internal note,,\n" +
	"greeting,Hello,\n"

const enJSON = "{\n" +
	"  \"menu\": {\n" +
	"    \"title\": \"Menu\",\n" +
	"    \"items\": {\n" +
	"      \"home\": \"Home\"\n" +
	"    }\n" +
	"  },\n" +
	"  \"greeting\": \"Hello\"\n" +
	"}\n"

// fakeSource serves fixed payloads and records requested locations.
type fakeSource struct {
	mu        sync.Mutex
	payloads  map[string]string
	requested []string
}

func newFakeSource(payloads map[string]string) *fakeSource {
	return &fakeSource{payloads: payloads}
}

func (s *fakeSource) Fetch(_ context.Context, location string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requested = append(s.requested, location)
	data, ok := s.payloads[location]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(data), nil
}

// failingStorage rejects every write.
type failingStorage struct{}

func (failingStorage) Put(context.Context, string, []byte, string) error {
	return storage.ErrAccessDenied
}

func (failingStorage) Get(context.Context, string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (failingStorage) Location(key string) string { return "mem://" + key }

func newExporter(t *testing.T, src *fakeSource, store storage.Storage, opts exporter.Options) *exporter.Exporter {
	t.Helper()

	e, err := exporter.New(exporter.Deps{
		Source:  src,
		Storage: store,
		Logger:  logger.NewNope(),
	}, opts)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := exporter.New(exporter.Deps{}, exporter.DefaultOptions())
	require.ErrorIs(t, err, exporter.ErrNilDependency)

	opts := exporter.DefaultOptions()
	opts.Encoding = "toml"
	_, err = exporter.New(exporter.Deps{Source: newFakeSource(nil)}, opts)
	require.ErrorIs(t, err, locale.ErrUnknownEncoding)

	opts = exporter.DefaultOptions()
	opts.Locale.Separator = ""
	_, err = exporter.New(exporter.Deps{Source: newFakeSource(nil)}, opts)
	require.ErrorIs(t, err, locale.ErrConfiguration)
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("writes one document per language", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := newFakeSource(map[string]string{"sheet.csv": sheetCSV})
		e := newExporter(t, src, storage.NewDir(dir), exporter.DefaultOptions())

		report, err := e.Run(context.Background(), "sheet.csv")
		require.NoError(t, err)

		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, "sheet.csv", report.Source)
		assert.Equal(t, []string{"en", "ru"}, report.Languages)
		assert.Equal(t, locale.Stats{Rows: 4, Comments: 1, Entries: 6}, report.Stats)
		require.Len(t, report.Files, 2)
		assert.Equal(t, "en/common.json", report.Files[0].Key)
		assert.Equal(t, filepath.Join(dir, "ru", "common.json"), report.Files[1].Location)

		en, err := os.ReadFile(filepath.Join(dir, "en", "common.json"))
		require.NoError(t, err)
		assert.Equal(t, enJSON, string(en))

		ru, err := os.ReadFile(filepath.Join(dir, "ru", "common.json"))
		require.NoError(t, err)
		assert.Contains(t, string(ru), "\"greeting\": \"\"")
		assert.Contains(t, string(ru), "\"title\": \"Меню\"")
	})

	t.Run("second run leaves identical documents alone", func(t *testing.T) {
		t.Parallel()

		src := newFakeSource(map[string]string{"sheet.csv": sheetCSV})
		e := newExporter(t, src, storage.NewDir(t.TempDir()), exporter.DefaultOptions())

		first, err := e.Run(context.Background(), "sheet.csv")
		require.NoError(t, err)
		second, err := e.Run(context.Background(), "sheet.csv")
		require.NoError(t, err)

		assert.NotEqual(t, first.RunID, second.RunID)
		for _, f := range second.Files {
			assert.True(t, f.Unchanged, f.Key)
		}
	})

	t.Run("yaml encoding and custom namespace", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		opts := exporter.DefaultOptions()
		opts.Encoding = locale.EncodingYAML
		opts.Namespace = "app"

		src := newFakeSource(map[string]string{"sheet.csv": sheetCSV})
		_, err := newExporter(t, src, storage.NewDir(dir), opts).Run(context.Background(), "sheet.csv")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "en", "app.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "menu:\n  title: Menu\n  items:\n    home: Home\ngreeting: Hello\n", string(data))
	})

	t.Run("resolves sheet links to export urls", func(t *testing.T) {
		t.Parallel()

		const exportURL = "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=7"
		src := newFakeSource(map[string]string{exportURL: sheetCSV})
		e := newExporter(t, src, storage.NewDir(t.TempDir()), exporter.DefaultOptions())

		report, err := e.Run(context.Background(), "https://docs.google.com/spreadsheets/d/abc/edit#gid=7")
		require.NoError(t, err)
		assert.Equal(t, exportURL, report.Source)
		assert.Equal(t, []string{exportURL}, src.requested)
	})

	t.Run("configuration errors write nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := newFakeSource(map[string]string{"sheet.csv": "id,en\nhello,Hello\n"})
		_, err := newExporter(t, src, storage.NewDir(dir), exporter.DefaultOptions()).Run(context.Background(), "sheet.csv")

		var cfgErr *locale.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, locale.ReasonMissingKeyColumn, cfgErr.Reason)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("strict collisions abort", func(t *testing.T) {
		t.Parallel()

		opts := exporter.DefaultOptions()
		opts.Locale.Strict = true
		src := newFakeSource(map[string]string{"sheet.csv": "key,en\na,x\na.b,y\n"})

		_, err := newExporter(t, src, storage.NewDir(t.TempDir()), opts).Run(context.Background(), "sheet.csv")
		require.ErrorIs(t, err, locale.ErrKeyCollision)
	})

	t.Run("storage failures are reported", func(t *testing.T) {
		t.Parallel()

		src := newFakeSource(map[string]string{"sheet.csv": sheetCSV})
		_, err := newExporter(t, src, failingStorage{}, exporter.DefaultOptions()).Run(context.Background(), "sheet.csv")
		require.ErrorIs(t, err, storage.ErrAccessDenied)
		assert.Contains(t, err.Error(), `language "en"`)
	})

	t.Run("requires a source and storage", func(t *testing.T) {
		t.Parallel()

		e := newExporter(t, newFakeSource(nil), storage.NewDir(t.TempDir()), exporter.DefaultOptions())
		_, err := e.Run(context.Background(), "  ")
		require.ErrorIs(t, err, exporter.ErrNoSource)

		e = newExporter(t, newFakeSource(nil), nil, exporter.DefaultOptions())
		_, err = e.Run(context.Background(), "sheet.csv")
		require.ErrorIs(t, err, exporter.ErrNilDependency)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	src := newFakeSource(map[string]string{"sheet.csv": sheetCSV})
	e := newExporter(t, src, nil, exporter.DefaultOptions())
	ctx := context.Background()

	data, enc, err := e.Render(ctx, "sheet.csv", "en", "")
	require.NoError(t, err)
	assert.Equal(t, enJSON, string(data))
	assert.Equal(t, ".json", enc.Extension())

	data, enc, err = e.Render(ctx, "sheet.csv", "ru", "yaml")
	require.NoError(t, err)
	assert.Equal(t, ".yaml", enc.Extension())
	assert.Contains(t, string(data), "title: Меню")

	_, _, err = e.Render(ctx, "sheet.csv", "de", "")
	require.ErrorIs(t, err, exporter.ErrUnknownLanguage)

	_, _, err = e.Render(ctx, "sheet.csv", "en", "xml")
	require.ErrorIs(t, err, locale.ErrUnknownEncoding)

	langs, err := e.Languages(ctx, "sheet.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ru"}, langs)
}
