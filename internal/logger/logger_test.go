package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Logger{Level: "debug", Format: "json"}.SetupWriter(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Str("srid", "4326").Msg("Parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "4326", entry["srid"])
	require.Equal(t, "Parsed", entry["message"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	Logger{Level: "warn", Format: "text", NoColor: true}.SetupWriter(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("hidden")
	require.Empty(t, buf.String())

	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "WRN")
}

func TestDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	Logger{}.SetupWriter(&buf)
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
