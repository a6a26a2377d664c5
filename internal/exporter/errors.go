package exporter

import "errors"

var (
	// ErrNoSource is returned when neither an argument nor SHEET_URL names a sheet.
	ErrNoSource = errors.New("exporter: no sheet source given")

	// ErrUnknownLanguage is returned by Render for a language the sheet does not have.
	ErrUnknownLanguage = errors.New("exporter: unknown language")

	// ErrNilDependency is returned by New when a required dependency is missing.
	ErrNilDependency = errors.New("exporter: missing dependency")
)
