package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_writesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "postbrowser.log")

	logger, closer, err := New("info", file)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"visible"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_appends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "postbrowser.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("debug", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_level(t *testing.T) {
	logger, closer, err := New("warn", "")
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNew_invalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
