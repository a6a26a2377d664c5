// Package exporter turns a translation sheet into stored locale documents.
package exporter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/sheetlocale/pkg/locale"
	"github.com/dmitrymomot/sheetlocale/pkg/logger"
	"github.com/dmitrymomot/sheetlocale/pkg/sheet"
	"github.com/dmitrymomot/sheetlocale/pkg/storage"
)

// Deps are the collaborators of an Exporter.
type Deps struct {
	Source  sheet.Source
	Storage storage.Storage
	Logger  *slog.Logger
}

// Options control one export.
type Options struct {
	Locale    locale.Options
	Namespace string
	Encoding  string

	// GID selects the sheet tab; -1 uses the tab named in the URL.
	GID int
}

// DefaultOptions returns the options matching the command line defaults.
func DefaultOptions() Options {
	return Options{
		Locale:    locale.DefaultOptions(),
		Namespace: "common",
		Encoding:  locale.EncodingJSON,
		GID:       -1,
	}
}

// Exporter loads sheets and writes one document per language.
// It is safe for concurrent use.
type Exporter struct {
	source  sheet.Source
	storage storage.Storage
	logger  *slog.Logger
	encoder locale.Encoder
	opts    Options
}

// New validates opts and returns an Exporter.
// Storage may be nil for exporters that only render or verify.
func New(deps Deps, opts Options) (*Exporter, error) {
	if deps.Source == nil {
		return nil, fmt.Errorf("%w: source", ErrNilDependency)
	}
	if err := opts.Locale.Validate(); err != nil {
		return nil, err
	}
	enc, err := locale.EncoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if opts.Namespace == "" {
		opts.Namespace = "common"
	}

	l := deps.Logger
	if l == nil {
		l = logger.NewNope()
	}

	return &Exporter{
		source:  deps.Source,
		storage: deps.Storage,
		logger:  l,
		encoder: enc,
		opts:    opts,
	}, nil
}

// Options returns the options the exporter was built with.
func (e *Exporter) Options() Options {
	return e.opts
}

// File describes one written document.
type File struct {
	Language  string `json:"language"`
	Key       string `json:"key"`
	Location  string `json:"location"`
	Bytes     int    `json:"bytes"`
	Unchanged bool   `json:"unchanged,omitempty"`
}

// Report summarizes a completed export.
type Report struct {
	RunID     string        `json:"run_id"`
	Source    string        `json:"source"`
	Languages []string      `json:"languages"`
	Files     []File        `json:"files"`
	Stats     locale.Stats  `json:"stats"`
	Duration  time.Duration `json:"duration"`
}

// Build loads source and returns the per-language trees together with the
// location that was actually fetched.
func (e *Exporter) Build(ctx context.Context, source string) (*locale.Result, string, error) {
	if strings.TrimSpace(source) == "" {
		return nil, "", ErrNoSource
	}

	location, err := sheet.Resolve(source, e.opts.GID)
	if err != nil {
		return nil, "", err
	}

	e.logger.InfoContext(ctx, "fetching CSV", slog.String("source", location))

	table, err := sheet.Load(ctx, e.source, location)
	if err != nil {
		return nil, location, err
	}

	res, err := locale.Transform(table, e.opts.Locale)
	if err != nil {
		return nil, location, err
	}

	for _, lang := range res.Languages {
		if _, err := language.Parse(lang); err != nil {
			e.logger.WarnContext(ctx, "column header is not a language tag",
				slog.String("language", lang))
		}
	}
	e.logger.InfoContext(ctx, "detected languages",
		slog.String("languages", strings.Join(res.Languages, ", ")),
		slog.Int("rows", res.Stats.Rows),
		slog.Int("comments", res.Stats.Comments),
		slog.Int("skipped", res.Stats.Skipped),
	)

	return res, location, nil
}

// Run exports source to storage, one document per detected language.
// Documents whose stored content is already identical are not rewritten.
// Nothing is written when the sheet cannot be transformed.
// The sheet is always downloaded again, bypassing any fetch cache.
func (e *Exporter) Run(ctx context.Context, source string) (*Report, error) {
	if e.storage == nil {
		return nil, fmt.Errorf("%w: storage", ErrNilDependency)
	}

	start := time.Now()
	runID := uuid.NewString()
	ctx = sheet.Fresh(logger.WithRunID(ctx, runID))

	res, location, err := e.Build(ctx, source)
	if err != nil {
		e.logger.ErrorContext(ctx, "export failed", slog.String("error", err.Error()))
		return nil, err
	}

	report := &Report{
		RunID:     runID,
		Source:    location,
		Languages: res.Languages,
		Files:     make([]File, 0, len(res.Languages)),
		Stats:     res.Stats,
	}

	for _, lang := range res.Languages {
		tree, _ := res.Tree(lang)
		f, err := e.write(ctx, lang, tree)
		if err != nil {
			e.logger.ErrorContext(ctx, "export failed",
				slog.String("language", lang),
				slog.String("error", err.Error()),
			)
			return report, fmt.Errorf("language %q: %w", lang, err)
		}
		report.Files = append(report.Files, f)
	}

	report.Duration = time.Since(start)
	e.logger.InfoContext(ctx, "export finished",
		slog.Int("files", len(report.Files)),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

func (e *Exporter) write(ctx context.Context, lang string, tree *locale.Branch) (File, error) {
	key, err := storage.Key(lang, e.opts.Namespace, e.encoder.Extension())
	if err != nil {
		return File{}, err
	}

	data, err := locale.Marshal(e.encoder, tree)
	if err != nil {
		return File{}, err
	}

	f := File{
		Language: lang,
		Key:      key,
		Location: e.storage.Location(key),
		Bytes:    len(data),
	}

	existing, err := e.storage.Get(ctx, key)
	switch {
	case err == nil && bytes.Equal(existing, data):
		f.Unchanged = true
		e.logger.InfoContext(ctx, "unchanged", slog.String("path", f.Location))
		return f, nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		e.logger.DebugContext(ctx, "cannot read existing document",
			slog.String("path", f.Location),
			slog.String("error", err.Error()),
		)
	}

	if err := e.storage.Put(ctx, key, data, e.encoder.ContentType()); err != nil {
		return File{}, err
	}
	e.logger.InfoContext(ctx, "wrote", slog.String("path", f.Location), slog.Int("bytes", f.Bytes))

	return f, nil
}

// Render builds source and encodes the tree of one language without writing it.
// An empty encoding uses the exporter's configured encoding.
func (e *Exporter) Render(ctx context.Context, source, lang, encoding string) ([]byte, locale.Encoder, error) {
	enc := e.encoder
	if encoding != "" {
		var err error
		if enc, err = locale.EncoderFor(encoding); err != nil {
			return nil, nil, err
		}
	}

	res, _, err := e.Build(ctx, source)
	if err != nil {
		return nil, nil, err
	}

	tree, ok := res.Tree(lang)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	data, err := locale.Marshal(enc, tree)
	if err != nil {
		return nil, nil, err
	}
	return data, enc, nil
}

// Languages returns the language columns of source in sheet order.
func (e *Exporter) Languages(ctx context.Context, source string) ([]string, error) {
	res, _, err := e.Build(ctx, source)
	if err != nil {
		return nil, err
	}
	return res.Languages, nil
}
