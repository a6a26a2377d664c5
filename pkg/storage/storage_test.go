package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizePathSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "en", "en"},
		{"region subtag", "pt-BR", "pt-BR"},
		{"script subtag", "zh_Hans", "zh_Hans"},
		{"with spaces", "en US", "en_US"},
		{"with slashes", "/path/to/", "path_to"},
		{"path traversal", "../../../etc/passwd", "___etc_passwd"},
		{"leading dots", "..hidden", "hidden"},
		{"single dot", ".", ""},
		{"unicode letters kept", "русский", "русский"},
		{"special chars", "en@#$", "en___"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizePathSegment(tt.input))
		})
	}
}
