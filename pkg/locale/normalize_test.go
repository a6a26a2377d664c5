package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetlocale/pkg/locale"
)

func TestTrimTrailingEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  []string
		want []string
	}{
		{name: "empty row", row: []string{}, want: []string{}},
		{name: "nil row", row: nil, want: []string{}},
		{name: "no trailing empties", row: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "trailing empty and blank", row: []string{"a", "b", "", "  \t"}, want: []string{"a", "b"}},
		{name: "keeps leading and interior", row: []string{"", "a", " ", "b", ""}, want: []string{"", "a", " ", "b"}},
		{name: "all empty", row: []string{"", " ", ""}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := locale.TrimTrailingEmpty(tt.row)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestNormalizeRows(t *testing.T) {
	t.Parallel()

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()
		rows := locale.Table{{"key", "en", ""}, {"a", "", ""}}
		out := locale.NormalizeRows(rows)

		require.Equal(t, locale.Table{{"key", "en"}, {"a"}}, out)
		require.Len(t, rows[0], 3)
		require.Len(t, rows[1], 3)
	})

	t.Run("appending to a normalized row does not touch the source", func(t *testing.T) {
		t.Parallel()
		rows := locale.Table{{"a", "", "c2"}, {"b", ""}}
		out := locale.NormalizeRows(rows)

		_ = append(out[1], "x")
		require.Equal(t, "", rows[1][1])
	})
}

func TestCanonicalHeader(t *testing.T) {
	t.Parallel()

	in := []string{" key ", "en\t", "", " ru"}
	require.Equal(t, []string{"key", "en", "", "ru"}, locale.CanonicalHeader(in))
	require.Equal(t, " key ", in[0])
}
