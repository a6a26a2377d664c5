package locale_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetlocale/pkg/locale"
)

func TestResolveHeader(t *testing.T) {
	t.Parallel()

	t.Run("exact key column", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"key", "en", "ru"}}, "key", nil)
		require.NoError(t, err)

		assert.Equal(t, 0, m.KeyIndex())
		assert.Equal(t, "key", m.KeyColumn())
		assert.Equal(t, []locale.Column{{Language: "en", Index: 1}, {Language: "ru", Index: 2}}, m.Columns())
		assert.Equal(t, []string{"en", "ru"}, m.Languages())
	})

	t.Run("key column found case-insensitively", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"en", " KEY ", "de"}}, "key", nil)
		require.NoError(t, err)

		assert.Equal(t, 1, m.KeyIndex())
		assert.Equal(t, "KEY", m.KeyColumn())
		assert.Equal(t, []string{"en", "de"}, m.Languages())
	})

	t.Run("exact match wins over case-insensitive", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"Key", "key", "en"}}, "key", nil)
		require.NoError(t, err)

		assert.Equal(t, 1, m.KeyIndex())
		assert.Equal(t, []string{"Key", "en"}, m.Languages())
	})

	t.Run("skips empty headers", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"key", "", "en", "  ", "fr"}}, "key", nil)
		require.NoError(t, err)

		assert.Equal(t, []locale.Column{{Language: "en", Index: 2}, {Language: "fr", Index: 4}}, m.Columns())
	})

	t.Run("allow-list filters and keeps header order", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"key", "en", "ru", "de"}}, "key", []string{"de", "en"})
		require.NoError(t, err)

		assert.Equal(t, []string{"en", "de"}, m.Languages())
	})

	t.Run("allow-list is case-sensitive", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ResolveHeader(locale.Table{{"key", "en"}}, "key", []string{"EN"})

		var cfgErr *locale.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, locale.ReasonNoLanguages, cfgErr.Reason)
	})

	t.Run("repeated language listed once", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"key", "en", "en"}}, "key", nil)
		require.NoError(t, err)

		assert.Len(t, m.Columns(), 2)
		assert.Equal(t, []string{"en"}, m.Languages())
	})

	t.Run("missing key column names column and header", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ResolveHeader(locale.Table{{"id", "en"}}, "key", nil)
		require.ErrorIs(t, err, locale.ErrConfiguration)

		var cfgErr *locale.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, locale.ReasonMissingKeyColumn, cfgErr.Reason)
		assert.Equal(t, "key", cfgErr.Column)
		assert.Equal(t, []string{"id", "en"}, cfgErr.Header)
		assert.Contains(t, err.Error(), `"key"`)
		assert.Contains(t, err.Error(), `"id"`)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ResolveHeader(nil, "key", nil)

		var cfgErr *locale.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, locale.ReasonEmptyHeader, cfgErr.Reason)
	})

	t.Run("empty header row", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ResolveHeader(locale.Table{{}, {"a", "b"}}, "key", nil)

		var cfgErr *locale.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, locale.ReasonEmptyHeader, cfgErr.Reason)
	})

	t.Run("only key column", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ResolveHeader(locale.Table{{"key"}}, "key", nil)

		var cfgErr *locale.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, locale.ReasonNoLanguages, cfgErr.Reason)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		t.Parallel()
		m, err := locale.ResolveHeader(locale.Table{{"key", "en"}}, "key", nil)
		require.NoError(t, err)

		m.Columns()[0].Language = "xx"
		m.Languages()[0] = "xx"
		assert.Equal(t, []string{"en"}, m.Languages())
		assert.Equal(t, "en", m.Columns()[0].Language)
	})
}
