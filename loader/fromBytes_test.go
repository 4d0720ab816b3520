package loader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("binary content is kept as is", func(t *testing.T) {
		content := []byte{0x00, 0x61, 0x73, 0x6d, ' ', '\n'}
		l, err := NewFromBytes(content, "module.wasm")
		require.NoError(t, err)
		require.Equal(t, "bytes", l.GetSourceURL().Scheme)
		require.Equal(t, "module.wasm", l.GetSourceURL().Host)

		got, err := ReadAll(l)
		require.NoError(t, err)
		require.Equal(t, content, got)
	})

	t.Run("unnamed", func(t *testing.T) {
		l, err := NewFromBytes([]byte{1}, "")
		require.NoError(t, err)
		require.Equal(t, "unnamed", l.GetSourceURL().Host)
	})

	t.Run("empty", func(t *testing.T) {
		l, err := NewFromBytes(nil, "x")
		require.ErrorIs(t, err, ErrSourceNotAvailable)
		require.Nil(t, l)
	})
}
