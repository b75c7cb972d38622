package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes_at_level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "debug")
		require.NoError(t, err)
		logger.Debug().Str("dir", "/tmp").Msg("listed")
		out := buf.String()
		assert.Contains(t, out, "listed")
		assert.Contains(t, out, "dir=/tmp")
	})

	t.Run("filters_below_level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "warn")
		require.NoError(t, err)
		logger.Info().Msg("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid_level", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := New(&buf, "loud")
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl, err := ParseLevel(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, lvl)
		})
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestOpenFile(t *testing.T) {
	t.Run("empty_path_discards", func(t *testing.T) {
		w, err := OpenFile("")
		require.NoError(t, err)
		_, err = w.Write([]byte("x"))
		assert.NoError(t, err)
		assert.NoError(t, w.Close())
	})

	t.Run("appends_to_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dirtug.log")
		w, err := OpenFile(path)
		require.NoError(t, err)
		_, _ = w.Write([]byte("line\n"))
		require.NoError(t, w.Close())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "line\n", string(data))
	})

	t.Run("open_error", func(t *testing.T) {
		orig := osOpenFile
		defer func() { osOpenFile = orig }()
		osOpenFile = func(name string, flag int, perm os.FileMode) (*os.File, error) {
			return nil, errors.New("denied")
		}
		_, err := OpenFile("/nowhere/dirtug.log")
		assert.Error(t, err)
	})
}
