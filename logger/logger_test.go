package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, Level("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, Level("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, Level("ERROR"))
	assert.Equal(t, zerolog.InfoLevel, Level("INFO"))
	assert.Equal(t, zerolog.InfoLevel, Level("verbose"))
}

func TestNew(t *testing.T) {
	t.Setenv(levelEnv, LOG_LEVEL_WARN)

	var buf bytes.Buffer
	l := New(&buf, "munge")

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "munge", line["component"])
	assert.Equal(t, "shown", line["message"])
}
