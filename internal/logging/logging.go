package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

var levels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"warning":  pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"disabled": pterm.LogLevelDisabled,
	"off":      pterm.LogLevelDisabled,
}

// New returns a pterm logger writing to w at the named level.
func New(level string, w io.Writer) (*pterm.Logger, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	if lvl == pterm.LogLevelDisabled {
		w = io.Discard
	}
	return pterm.DefaultLogger.
		WithLevel(lvl).
		WithWriter(w), nil
}
