package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("palette", "Common").Msg("loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Common", entry["palette"])
	assert.Equal(t, "loaded", entry["message"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "DEBUG", Output: &buf})
	require.NoError(t, err)

	logger.Debug().Str("path", "out/common.go").Msg("wrote")
	assert.Contains(t, buf.String(), "wrote")
	assert.Contains(t, buf.String(), "path=out/common.go")
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestInitAndComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "info", Format: "json", Output: &buf}))
	t.Cleanup(func() {
		mu.Lock()
		base = Nop()
		mu.Unlock()
	})

	logger := Component("codegen")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"codegen"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}
