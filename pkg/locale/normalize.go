package locale

import "strings"

// Table is an in-memory spreadsheet: ordered rows of ordered cells.
// The first row is the header row.
type Table [][]string

// TrimTrailingEmpty drops trailing cells that are empty after trimming
// whitespace. Leading and interior empty cells are kept since cells are
// matched to the header by position.
func TrimTrailingEmpty(row []string) []string {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	return row[:end:end]
}

// NormalizeRows returns a new table with TrimTrailingEmpty applied to every row.
// The input is not modified.
func NormalizeRows(rows Table) Table {
	out := make(Table, len(rows))
	for i, row := range rows {
		out[i] = TrimTrailingEmpty(row)
	}
	return out
}

// CanonicalHeader returns a copy of the header row with every cell trimmed.
func CanonicalHeader(row []string) []string {
	out := make([]string, len(row))
	for i, h := range row {
		out[i] = strings.TrimSpace(h)
	}
	return out
}
