package sheet

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidURL is returned when no spreadsheet ID can be extracted from a URL.
	ErrInvalidURL = errors.New("sheet: cannot extract spreadsheet ID from URL, paste a standard Google Sheets link")

	// ErrNotPublic is returned when the sheet host refuses access.
	ErrNotPublic = errors.New("sheet: access denied, is the sheet public?")

	// ErrFetchFailed is returned when a download fails for any other reason.
	ErrFetchFailed = errors.New("sheet: failed to fetch CSV")

	// ErrTooLarge is returned when the payload exceeds the configured size limit.
	ErrTooLarge = errors.New("sheet: payload exceeds size limit")

	// ErrReadFile is returned when a local CSV file cannot be read.
	ErrReadFile = errors.New("sheet: failed to read file")

	// ErrParseCSV is returned when the payload is not valid CSV.
	ErrParseCSV = errors.New("sheet: failed to parse CSV")

	// ErrInvalidCredentials is returned when Google credentials cannot be loaded.
	ErrInvalidCredentials = errors.New("sheet: invalid Google credentials")
)

// HTTPError describes a non-200 response from the sheet host.
// It unwraps to ErrNotPublic for 401, 403 and 404, and to ErrFetchFailed otherwise.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sheet: HTTP error %d while fetching CSV. Is the sheet public? URL: %s", e.StatusCode, e.URL)
}

func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return ErrNotPublic
	default:
		return ErrFetchFailed
	}
}
