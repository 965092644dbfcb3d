package routecheck

import "testing"

func TestDefaultLogger_ErrorWithoutArgs(t *testing.T) {
	prev := LoggerEnabled
	LoggerEnabled = true
	defer func() { LoggerEnabled = prev }()

	var lgr defaultLogger
	lgr.Error("plain message with no args")
	lgr.Error("structured: %s", map[string]any{"k": "v"})
	lgr.Error("formatted %d", 42)
}
