package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir loads documents laid out as {lang}/{namespace}.json.
// The root of fsys holds the language directories.
//
//	en/common.json
//	en/errors.json
//	de/common.json
func WithJSONDir(fsys fs.FS) Option {
	return withDir(fsys, json.Unmarshal, ".json")
}

// WithYAMLDir loads documents laid out as {lang}/{namespace}.yaml or .yml.
func WithYAMLDir(fsys fs.FS) Option {
	return withDir(fsys, yaml.Unmarshal, ".yaml", ".yml")
}

func withDir(fsys fs.FS, unmarshal func([]byte, any) error, exts ...string) Option {
	return func(i *I18n) error {
		i.sources = append(i.sources, func(i *I18n) error {
			return loadDir(i, fsys, unmarshal, exts)
		})
		return nil
	}
}

// loadDir reads one level of language directories. Files in the root,
// deeper directories and files with other extensions are skipped. A missing
// root is returned as is so callers can test it with fs.ErrNotExist.
func loadDir(i *I18n, fsys fs.FS, unmarshal func([]byte, any) error, exts []string) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() {
			if slices.Contains(exts, strings.ToLower(path.Ext(name))) {
				i.logger.Debug("skipping file outside a language directory", slog.String("file", name))
			}
			continue
		}

		docs, err := fs.ReadDir(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}
		for _, doc := range docs {
			if doc.IsDir() || !slices.Contains(exts, strings.ToLower(path.Ext(doc.Name()))) {
				continue
			}
			if err := loadFile(i, fsys, path.Join(name, doc.Name()), name, unmarshal); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadFile(i *I18n, fsys fs.FS, file, lang string, unmarshal func([]byte, any) error) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("reading %q: %w", file, err)
	}

	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, file, err)
	}

	namespace := strings.TrimSuffix(path.Base(file), path.Ext(file))
	i.add(lang, namespace, doc)
	return nil
}
