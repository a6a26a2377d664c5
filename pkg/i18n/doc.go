// Package i18n reads locale documents back into a flat catalog.
//
// Documents follow the {lang}/{namespace}.json (or .yaml/.yml) layout.
// Nested objects are flattened into separator-joined keys, so nested and
// flat documents with the same content produce the same catalog.
//
// # Loading
//
//	catalog, err := i18n.New(
//		i18n.WithSeparator("."),
//		i18n.WithJSONDir(os.DirFS("./locales")),
//		i18n.WithYAMLDir(os.DirFS("./locales")),
//	)
//
// In-memory documents can be added with WithTranslations:
//
//	catalog, err := i18n.New(
//		i18n.WithTranslations("en", "common", map[string]any{
//			"auth": map[string]any{"login": "Sign in"},
//		}),
//	)
//
//	v, ok := catalog.Lookup("en", "common", "auth.login") // "Sign in", true
//
// # Thread Safety
//
// An I18n is immutable after New returns and safe for concurrent use.
package i18n
