package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-scalarfunc/internal/helpers"
)

func TestNewFromString(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
			want    string
		}{
			{name: "simple content", content: "def f(t): return t", want: "def f(t): return t"},
			{name: "trim whitespace", content: "  times: [0, 1]  \n", want: "times: [0, 1]"},
			{name: "multiline content", content: "def f(t):\n    return 2 * t", want: "def f(t):\n    return 2 * t"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				l, err := NewFromString(tc.content)
				require.NoError(t, err)
				require.Equal(t, tc.want, l.content)
				require.Equal(t, "string", l.GetSourceURL().Scheme)
				require.Contains(t, l.GetSourceURL().String(), helpers.ShortHash([]byte(tc.want)))

				got, err := ReadAll(l)
				require.NoError(t, err)
				require.Equal(t, tc.want, string(got))

				// readers are independent
				again, err := ReadAll(l)
				require.NoError(t, err)
				require.Equal(t, got, again)
			})
		}
	})

	t.Run("empty content", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\n\t"} {
			l, err := NewFromString(content)
			require.ErrorIs(t, err, ErrSourceNotAvailable)
			require.Nil(t, l)
		}
	})

	t.Run("string", func(t *testing.T) {
		l, err := NewFromString("abc")
		require.NoError(t, err)
		require.Equal(t, "loader.FromString{Chars: 3}", l.String())
	})
}
