package locale

import (
	"slices"
	"strings"
)

// Column binds a language code to its position in the table.
type Column struct {
	Language string
	Index    int
}

// Mapping is the resolved layout of a table: where the keys are and which
// columns hold which language. It is immutable once returned by ResolveHeader.
type Mapping struct {
	keyColumn string
	columns   []Column
	languages []string
	keyIndex  int
}

// KeyIndex returns the position of the key column.
func (m *Mapping) KeyIndex() int { return m.keyIndex }

// KeyColumn returns the key column header as it appears in the table.
func (m *Mapping) KeyColumn() string { return m.keyColumn }

// Columns returns the language columns in header order.
func (m *Mapping) Columns() []Column { return slices.Clone(m.columns) }

// Languages returns the distinct language codes in header order.
// A code repeated in the header is listed once.
func (m *Mapping) Languages() []string { return slices.Clone(m.languages) }

// ResolveHeader locates the key column and the language columns of table.
//
// The key column is matched exactly first and case-insensitively second.
// Language columns are all other non-empty headers; when allow is non-empty
// only headers contained in it are kept. The allow-list comparison is exact
// and case-sensitive, unlike the key column lookup.
func ResolveHeader(table Table, keyColumn string, allow []string) (*Mapping, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, &ConfigurationError{
			Reason:  ReasonEmptyHeader,
			Message: "empty CSV: no header row found",
		}
	}

	header := CanonicalHeader(table[0])

	keyIndex := slices.Index(header, keyColumn)
	if keyIndex < 0 {
		keyIndex = slices.IndexFunc(header, func(h string) bool {
			return strings.EqualFold(h, keyColumn)
		})
	}
	if keyIndex < 0 {
		return nil, missingKeyColumn(keyColumn, header)
	}

	m := &Mapping{
		keyIndex:  keyIndex,
		keyColumn: header[keyIndex],
	}

	for idx, h := range header {
		if idx == keyIndex || h == "" {
			continue
		}
		if len(allow) > 0 && !slices.Contains(allow, h) {
			continue
		}
		m.columns = append(m.columns, Column{Language: h, Index: idx})
		if !slices.Contains(m.languages, h) {
			m.languages = append(m.languages, h)
		}
	}

	if len(m.columns) == 0 {
		return nil, &ConfigurationError{
			Reason:  ReasonNoLanguages,
			Header:  header,
			Message: "no language columns detected, check header row",
		}
	}

	return m, nil
}
