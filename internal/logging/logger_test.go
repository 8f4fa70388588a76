package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(NewLogger(Config{Level: "info", Format: FormatJSON}, &buf), "lca")

	l.Debug().Msg("hidden")
	l.Info().Int("row_count", 3).Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "lca", entry["component"])
	assert.InDelta(t, 3.0, entry["row_count"], 0)
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcafocus.log")
	res := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
	require.True(t, res.UsingFile)
	assert.False(t, res.FallbackUsed)

	res.Logger.Info().Msg("to file")
	require.NoError(t, res.Close())
	require.NoError(t, res.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	res := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.False(t, res.UsingFile)
	assert.True(t, res.FallbackUsed)
	assert.NotEmpty(t, res.FallbackReason)

	res = NewLoggerWithPath(Config{Output: OutputFile})
	assert.True(t, res.FallbackUsed)
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())

	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug"}, &buf)
	ctx := l.WithContext(context.Background())
	FromContext(ctx).Debug().Msg("through context")
	assert.Contains(t, buf.String(), "through context")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	assert.Len(t, id, 26)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, id, NewTraceID())
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")
	assert.Contains(t, buf.String(), "/tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}
