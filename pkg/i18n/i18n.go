package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// DefaultSeparator joins nested keys when documents are flattened.
const DefaultSeparator = "."

// I18n is a read-only catalog of flattened translations.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// lang -> namespace -> flattened key -> value
	translations map[string]map[string]map[string]string

	// Sources are loaded after every option has been applied,
	// so the separator does not depend on option order.
	sources []func(*I18n) error

	logger    *slog.Logger
	separator string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All loading happens during construction.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]map[string]map[string]string),
		separator:    DefaultSeparator,
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	for _, load := range i.sources {
		if err := load(i); err != nil {
			return nil, err
		}
	}
	i.sources = nil

	return i, nil
}

// WithSeparator sets the delimiter used to join nested keys. Default: ".".
func WithSeparator(sep string) Option {
	return func(i *I18n) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		i.separator = sep
		return nil
	}
}

// WithLogger sets the logger for files skipped while loading directories.
func WithLogger(l *slog.Logger) Option {
	return func(i *I18n) error {
		if l != nil {
			i.logger = l
		}
		return nil
	}
}

// WithTranslations adds translations for a specific language and namespace.
// The map can be nested; it is flattened with the configured separator.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.sources = append(i.sources, func(i *I18n) error {
			i.add(lang, namespace, translations)
			return nil
		})
		return nil
	}
}

// Lookup returns the value stored for key, and whether it exists.
func (i *I18n) Lookup(lang, namespace, key string) (string, bool) {
	v, ok := i.translations[lang][namespace][key]
	return v, ok
}

// Keys returns the sorted flattened keys of one document.
func (i *I18n) Keys(lang, namespace string) []string {
	return slices.Sorted(maps.Keys(i.translations[lang][namespace]))
}

// Entries returns a copy of the flattened document for lang and namespace.
func (i *I18n) Entries(lang, namespace string) map[string]string {
	return maps.Clone(i.translations[lang][namespace])
}

// Languages returns the sorted list of loaded languages.
func (i *I18n) Languages() []string {
	return slices.Sorted(maps.Keys(i.translations))
}

// Namespaces returns the sorted namespaces loaded for lang.
func (i *I18n) Namespaces(lang string) []string {
	return slices.Sorted(maps.Keys(i.translations[lang]))
}

// Separator returns the delimiter nested keys were joined with.
func (i *I18n) Separator() string {
	return i.separator
}

func (i *I18n) add(lang, namespace string, data map[string]any) {
	byNS, ok := i.translations[lang]
	if !ok {
		byNS = make(map[string]map[string]string)
		i.translations[lang] = byNS
	}
	doc, ok := byNS[namespace]
	if !ok {
		doc = make(map[string]string)
		byNS[namespace] = doc
	}
	flattenInto(doc, data, "", i.separator)
}

func flattenInto(dst map[string]string, data map[string]any, prefix, sep string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + sep + key
		}

		switch v := value.(type) {
		case string:
			dst[fullKey] = v
		case map[string]any:
			flattenInto(dst, v, fullKey, sep)
		case map[string]string:
			for subKey, subVal := range v {
				dst[fullKey+sep+subKey] = subVal
			}
		case nil:
			dst[fullKey] = ""
		default:
			dst[fullKey] = fmt.Sprintf("%v", v)
		}
	}
}
