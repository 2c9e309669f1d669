package logging

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("Debug", &buf)
	require.NoError(t, err)
	assert.Equal(t, pterm.LogLevelDebug, logger.Level)

	logger.Debug("parsed listing", logger.Args("entries", 3))
	logger.Trace("not shown")
	assert.Contains(t, buf.String(), "parsed listing")
	assert.Contains(t, buf.String(), "entries")
	assert.NotContains(t, buf.String(), "not shown")
}

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("off", &buf)
	require.NoError(t, err)
	logger.Error("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_UnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New("loud", &bytes.Buffer{})
	assert.Error(t, err)
}
