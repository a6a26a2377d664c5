package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const exportURLFormat = "https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%d"

var (
	sheetIDPattern = regexp.MustCompile(`https://docs\.google\.com/spreadsheets/d/([^/]+)/`)
	gidPattern     = regexp.MustCompile(`[?#&]gid=(\d+)`)
)

// ExportURL turns a shared Google Sheets link into a direct CSV export URL.
//
// Links already containing "output=csv" (published sheets) are returned unchanged.
// The exported tab is chosen by gid when gid >= 0, then by a gid found in the
// query or fragment of raw, and finally defaults to the first tab (0).
//
//	u, _ := sheet.ExportURL("https://docs.google.com/spreadsheets/d/abc/edit#gid=42", -1)
//	// https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=42
func ExportURL(raw string, gid int) (string, error) {
	if strings.Contains(raw, "output=csv") {
		return raw, nil
	}

	m := sheetIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", ErrInvalidURL
	}
	id := m[1]

	if gid < 0 {
		gid = 0
		if g := gidPattern.FindStringSubmatch(raw); g != nil {
			if n, err := strconv.Atoi(g[1]); err == nil {
				gid = n
			}
		}
	}

	return fmt.Sprintf(exportURLFormat, id, gid), nil
}

// IsRemote reports whether source is fetched over HTTP rather than read from disk.
func IsRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Resolve returns the location to fetch for source.
// Remote sources go through ExportURL; local paths are returned unchanged.
func Resolve(source string, gid int) (string, error) {
	if !IsRemote(source) {
		return source, nil
	}
	return ExportURL(source, gid)
}
