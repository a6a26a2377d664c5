package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/dmitrymomot/sheetlocale/pkg/locale"
)

// ParseCSV reads every record of r. Rows may have different lengths and
// stray quotes are tolerated; cells are returned exactly as read.
// Blank lines before or between records become empty rows, so a table that
// starts with a blank line has an empty header.
func ParseCSV(r io.Reader) (locale.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		table locale.Table
		line  int // last line consumed by the previous record
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, errors.Join(ErrParseCSV, err)
		}

		// encoding/csv skips blank lines; restore them from line positions.
		start, _ := cr.FieldPos(0)
		for ; line+1 < start; line++ {
			table = append(table, []string{})
		}
		last := len(rec) - 1
		end, _ := cr.FieldPos(last)
		line = end + strings.Count(rec[last], "\n")

		table = append(table, rec)
	}
}

// Source returns the raw bytes stored at a location.
// Fetcher is the production implementation.
type Source interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Load fetches location from src, decodes it and parses the CSV table.
func Load(ctx context.Context, src Source, location string) (locale.Table, error) {
	data, err := src.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return ParseCSV(strings.NewReader(Decode(data)))
}
