package storage

import (
	"context"
	"regexp"
	"strings"
)

// Storage writes rendered locale documents.
type Storage interface {
	// Put stores data under key, replacing any previous content.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the content stored under key.
	// Returns ErrNotFound if nothing is stored there.
	Get(ctx context.Context, key string) ([]byte, error)

	// Location describes where key is stored, for logs and command output.
	Location(key string) string
}

// Key builds the storage key of one document: {lang}/{namespace}{ext}.
// Both segments are sanitized so a sheet header cannot escape the output root.
// Returns ErrInvalidKey if a segment is empty after sanitizing.
func Key(lang, namespace, ext string) (string, error) {
	l := sanitizePathSegment(lang)
	ns := sanitizePathSegment(namespace)
	if l == "" || ns == "" {
		return "", ErrInvalidKey
	}
	return l + "/" + ns + ext, nil
}

// pathSegmentRegex matches characters that are not safe for path segments.
var pathSegmentRegex = regexp.MustCompile(`[^\p{L}\p{N}\-_.]`)

// sanitizePathSegment removes potentially dangerous characters from path segments.
func sanitizePathSegment(segment string) string {
	segment = strings.Trim(segment, " /\\")
	segment = strings.ReplaceAll(segment, "..", "")
	segment = pathSegmentRegex.ReplaceAllString(segment, "_")
	return strings.Trim(segment, ".")
}
