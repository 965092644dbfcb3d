package routecheck

import "fmt"

var LoggerEnabled = false

// Logger is the minimal logging surface the engine uses. Messages are
// printf-style.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type defaultLogger struct {
}

func (d *defaultLogger) Debug(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Info(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[INFO] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Error(format string, args ...any) {
	if !LoggerEnabled {
		return
	}
	if len(args) == 0 {
		fmt.Printf("[ERROR] " + format + "\n")
		return
	}
	switch t := args[0].(type) {
	case map[string]any:
		fmt.Printf("[ERROR] %s %+v\n", format, t)
	default:
		fmt.Printf("[ERROR] "+format+"\n", args...)
	}
}
