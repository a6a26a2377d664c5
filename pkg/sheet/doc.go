// Package sheet loads translation tables from Google Sheets CSV exports
// or local CSV files.
//
// # Export URLs
//
// ExportURL turns a shared sheet link into its CSV export endpoint:
//
//	u, err := sheet.ExportURL("https://docs.google.com/spreadsheets/d/<ID>/edit#gid=0", -1)
//
// Links that already contain "output=csv" are used as given.
//
// # Fetching
//
// A Fetcher downloads remote sources with a timeout and a size limit, and
// reads anything else from disk:
//
//	f := sheet.NewFetcher(
//		sheet.WithTimeout(30*time.Second),
//		sheet.WithCache(cache.NewMemory[[]byte](), 5*time.Minute),
//	)
//	table, err := sheet.Load(ctx, f, u)
//
// Access errors (401, 403, 404) match ErrNotPublic. Private sheets can be
// read with WithTokenSource and GoogleTokenSource.
//
// # Decoding
//
// Payloads are UTF-8 with an optional byte order mark. Anything else is
// treated as UTF-16.
package sheet
