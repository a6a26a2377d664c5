// Package locale turns a translation table into one key/value tree per language.
//
// The input is a Table exported from a spreadsheet: the first row is a header,
// one column holds translation keys and every other non-empty header is a
// language code. The package never reads files or the network; it works on an
// in-memory Table and produces trees that an Encoder renders to documents.
//
// # Pipeline
//
//	rows -> NormalizeRows -> ResolveHeader -> Build -> Encoder
//
// Transform runs the first three steps:
//
//	res, err := locale.Transform(rows, locale.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	for _, lang := range res.Languages {
//		tree, _ := res.Tree(lang)
//		data, err := locale.Marshal(locale.JSONEncoder{}, tree)
//		// ...
//	}
//
// Given the header ["key", "en", "ru"] and the rows
//
//	menu.title     Home  Главная
//	menu.sub.item  Item
//
// the en tree is {"menu":{"title":"Home","sub":{"item":"Item"}}} and the ru
// tree is {"menu":{"title":"Главная","sub":{"item":""}}}.
//
// # Trees
//
// A tree is a *Branch: an ordered map whose values are Leaf strings or nested
// branches. Keys keep the order in which rows first produced them, so encoding
// the same table twice yields identical bytes.
//
// # Path collisions
//
// An Expander writes dotted keys. Built with strict=false (what Build uses by
// default) it resolves conflicts by replacement:
//
//	a = x    ->  {"a": "x"}
//	a.b = y  ->  {"a": {"b": "y"}}   // the leaf "x" is dropped
//
// Built with strict=true the second assignment fails with *KeyCollisionError.
//
// # Errors
//
// Table and option problems are reported as *ConfigurationError (matching
// ErrConfiguration): an empty header, a missing key column or no usable
// language column. Strict collisions are reported as *KeyCollisionError
// (matching ErrKeyCollision).
//
// # Concurrency
//
// The package keeps no global state. Separate calls with separate inputs can
// run concurrently; a Result must not be modified once returned.
package locale
