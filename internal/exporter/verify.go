package exporter

import (
	"cmp"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/sheetlocale/pkg/i18n"
	"github.com/dmitrymomot/sheetlocale/pkg/locale"
	"github.com/dmitrymomot/sheetlocale/pkg/sheet"
)

// DriftKind classifies a difference between the sheet and written documents.
type DriftKind string

const (
	// DriftMissing marks a sheet key absent from the document.
	DriftMissing DriftKind = "missing"
	// DriftChanged marks a key whose stored value differs from the sheet.
	DriftChanged DriftKind = "changed"
	// DriftExtra marks a document key the sheet no longer has.
	DriftExtra DriftKind = "extra"
)

// Drift is one key that differs between the sheet and the written documents.
type Drift struct {
	Language string    `json:"language"`
	Key      string    `json:"key"`
	Kind     DriftKind `json:"kind"`
	Want     string    `json:"want,omitempty"`
	Got      string    `json:"got,omitempty"`
}

// VerifyReport lists every difference found by Verify, sorted by language and key.
type VerifyReport struct {
	Source    string   `json:"source"`
	Languages []string `json:"languages"`
	Checked   int      `json:"checked"`
	Drift     []Drift  `json:"drift"`
}

// InSync reports whether the documents match the sheet.
func (r *VerifyReport) InSync() bool {
	return len(r.Drift) == 0
}

// Verify compares the sheet with documents previously written to fsys,
// laid out as {lang}/{namespace}{ext}. It never writes.
// The sheet is always downloaded again, bypassing any fetch cache.
func (e *Exporter) Verify(ctx context.Context, source string, fsys fs.FS) (*VerifyReport, error) {
	ctx = sheet.Fresh(ctx)
	res, location, err := e.Build(ctx, source)
	if err != nil {
		return nil, err
	}

	sep := e.opts.Locale.Separator
	if sep == "" {
		sep = locale.DefaultSeparator
	}

	load := i18n.WithJSONDir(fsys)
	if e.encoder.Extension() != ".json" {
		load = i18n.WithYAMLDir(fsys)
	}
	catalog, err := i18n.New(i18n.WithSeparator(sep), i18n.WithLogger(e.logger), load)
	if errors.Is(err, fs.ErrNotExist) {
		// Nothing exported yet: every sheet key is missing.
		catalog, err = i18n.New()
	}
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{Source: location, Languages: res.Languages}
	for _, lang := range res.Languages {
		tree, _ := res.Tree(lang)
		want := tree.Flatten(sep)
		got := catalog.Entries(lang, e.opts.Namespace)

		for key, w := range want {
			report.Checked++
			g, ok := got[key]
			switch {
			case !ok:
				report.Drift = append(report.Drift, Drift{Language: lang, Key: key, Kind: DriftMissing, Want: w})
			case g != w:
				report.Drift = append(report.Drift, Drift{Language: lang, Key: key, Kind: DriftChanged, Want: w, Got: g})
			}
		}
		for key, g := range got {
			if _, ok := want[key]; !ok {
				report.Drift = append(report.Drift, Drift{Language: lang, Key: key, Kind: DriftExtra, Got: g})
			}
		}
	}

	slices.SortFunc(report.Drift, func(a, b Drift) int {
		return cmp.Or(cmp.Compare(a.Language, b.Language), cmp.Compare(a.Key, b.Key))
	})

	e.logger.InfoContext(ctx, "verify finished",
		slog.Int("checked", report.Checked),
		slog.Int("drift", len(report.Drift)),
	)

	return report, nil
}
