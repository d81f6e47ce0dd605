// Package ports defines interfaces for external dependencies.
package ports

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for per-frame and per-component details.
	LevelDebug LogLevel = iota
	// LevelInfo is for stage-level progress.
	LevelInfo
	// LevelWarn is for problems that do not abort a build.
	LevelWarn
	// LevelError is for failures that abort a build.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "unknown"
}

// ParseLogLevel parses a string into a LogLevel. Unknown names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	for l, name := range levelNames {
		if name == s {
			return l
		}
	}
	return LevelInfo
}

// Logger abstracts logging operations with multi-language support.
// The msg parameter is a format string that doubles as the translation key.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a new Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}
