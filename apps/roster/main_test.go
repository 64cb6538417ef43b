package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_openLogOutput(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.log")
		out, err := openLogOutput(path)
		require.NoError(t, err)

		_, err = out.Write([]byte("line\n"))
		require.NoError(t, err)
		require.NoError(t, out.Close())

		_, err = out.Write([]byte("late\n"))
		assert.ErrorIs(t, err, os.ErrClosed)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line\n", string(data))
	})

	t.Run("stderr stays open", func(t *testing.T) {
		out, err := openLogOutput("")
		require.NoError(t, err)
		require.NoError(t, out.Close())
		_, err = os.Stderr.Stat()
		assert.NoError(t, err)
	})

	t.Run("bad path", func(t *testing.T) {
		_, err := openLogOutput(filepath.Join(t.TempDir(), "missing", "roster.log"))
		assert.Error(t, err)
	})
}
