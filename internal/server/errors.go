package server

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sheetlocale/internal/exporter"
	"github.com/dmitrymomot/sheetlocale/pkg/locale"
	"github.com/dmitrymomot/sheetlocale/pkg/sheet"
	"github.com/dmitrymomot/sheetlocale/pkg/storage"
)

var (
	// ErrExportRunning is returned when an export is requested while another is in progress.
	ErrExportRunning = errors.New("server: export already running")

	// ErrInvalidSchedule is returned by New for an unparsable EXPORT_SCHEDULE.
	ErrInvalidSchedule = errors.New("server: invalid export schedule")

	// ErrNilService is returned by New without an exporter.
	ErrNilService = errors.New("server: service is required")
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, exporter.ErrUnknownLanguage):
		return http.StatusNotFound
	case errors.Is(err, locale.ErrConfiguration), errors.Is(err, locale.ErrKeyCollision):
		return http.StatusUnprocessableEntity
	case errors.Is(err, locale.ErrUnknownEncoding):
		return http.StatusBadRequest
	case errors.Is(err, ErrExportRunning):
		return http.StatusConflict
	case errors.Is(err, sheet.ErrNotPublic),
		errors.Is(err, sheet.ErrFetchFailed),
		errors.Is(err, sheet.ErrTooLarge),
		errors.Is(err, storage.ErrAccessDenied),
		errors.Is(err, storage.ErrUploadFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
