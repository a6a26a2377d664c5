package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetCSV = "\ufeffkey,en,ru\n" +
	"# navigation,,\n" +
	"menu.title,Menu,Меню\n" +
	"menu.items.home,Home,\n" +
	"greeting,Hello,Привет\n"

func writeSheet(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sheet.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(context.Background(), append(args, "--log-level", "error"), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExport(t *testing.T) {
	t.Parallel()

	src := writeSheet(t, sheetCSV)
	out := t.TempDir()

	code, stdout, stderr := execute(t, "export", src, "--out", out)
	require.Equal(t, exitOK, code, stderr)

	enPath := filepath.Join(out, "en", "common.json")
	ruPath := filepath.Join(out, "ru", "common.json")
	assert.Equal(t, "Fetching CSV: "+src+"\n"+
		"Detected languages: en, ru\n"+
		"Wrote "+enPath+"\n"+
		"Wrote "+ruPath+"\n"+
		"Done.\n", stdout)

	ru, err := os.ReadFile(ruPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n"+
		"  \"menu\": {\n"+
		"    \"title\": \"Меню\",\n"+
		"    \"items\": {\n"+
		"      \"home\": \"\"\n"+
		"    }\n"+
		"  },\n"+
		"  \"greeting\": \"Привет\"\n"+
		"}\n", string(ru))

	t.Run("second run leaves documents alone", func(t *testing.T) {
		code, stdout, _ := execute(t, "export", src, "--out", out)
		require.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "Unchanged "+enPath+"\n")
	})
}

func TestExport_Flags(t *testing.T) {
	t.Parallel()

	src := writeSheet(t, sheetCSV)
	out := t.TempDir()

	code, stdout, stderr := execute(t, "export", src,
		"--out", out,
		"--format", "flat",
		"--allow", "ru",
		"--no-include-missing-as-empty",
		"--encoding", "yaml",
		"--namespace", "app",
	)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Detected languages: ru\n")
	assert.NoFileExists(t, filepath.Join(out, "en", "app.yaml"))

	data, err := os.ReadFile(filepath.Join(out, "ru", "app.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Меню")
	assert.Contains(t, string(data), "Привет")
	assert.NotContains(t, string(data), "menu.items.home")
}

func TestExport_CommentPrefixDisabled(t *testing.T) {
	t.Parallel()

	src := writeSheet(t, "key,en\n# note,kept\n")
	out := t.TempDir()

	code, _, stderr := execute(t, "export", src, "--out", out, "--comment-prefix=", "--format", "flat")
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(filepath.Join(out, "en", "common.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"# note\": \"kept\"\n}\n", string(data))
}

func TestExport_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args func(t *testing.T) []string
		want string
	}{
		{
			name: "missing key column",
			args: func(t *testing.T) []string {
				return []string{"export", writeSheet(t, "id,en\nx,y\n"), "--out", t.TempDir()}
			},
			want: `ERROR: locale: key column "key" not found`,
		},
		{
			name: "unknown format",
			args: func(t *testing.T) []string {
				return []string{"export", writeSheet(t, sheetCSV), "--out", t.TempDir(), "--format", "tree"}
			},
			want: "ERROR: ",
		},
		{
			name: "not a sheet url",
			args: func(t *testing.T) []string {
				return []string{"export", "https://example.com/data.csv", "--out", t.TempDir()}
			},
			want: "ERROR: sheet: ",
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"export", filepath.Join(t.TempDir(), "absent.csv"), "--out", t.TempDir()}
			},
			want: "ERROR: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := execute(t, tt.args(t)...)
			assert.Equal(t, exitError, code)
			assert.NotContains(t, stdout, "Done.")
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	src := writeSheet(t, sheetCSV)
	out := t.TempDir()

	code, _, stderr := execute(t, "export", src, "--out", out)
	require.Equal(t, exitOK, code, stderr)

	code, stdout, stderr := execute(t, "verify", src, "--out", out)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "In sync: 6 keys checked.\n", stdout)

	enPath := filepath.Join(out, "en", "common.json")
	require.NoError(t, os.WriteFile(enPath, []byte(`{"menu":{"title":"Main menu"},"stale":"x"}`), 0o600))

	code, stdout, stderr = execute(t, "verify", src, "--out", out)
	assert.Equal(t, exitDrift, code)
	assert.Contains(t, stdout, `changed en menu.title: "Main menu" != "Menu"`)
	assert.Contains(t, stdout, "missing en greeting\n")
	assert.Contains(t, stdout, "extra en stale\n")
	assert.NotContains(t, stderr, "ERROR:")
}

func TestNoSource(t *testing.T) {
	t.Parallel()

	if os.Getenv("SHEET_URL") != "" {
		t.Skip("SHEET_URL is set in the environment")
	}

	code, _, stderr := execute(t, "export", "--out", t.TempDir())
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "ERROR: exporter: ")
}
