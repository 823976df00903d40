package logging

import (
	"strings"

	"github.com/rxtech-lab/argo-logger/pkg/errors"
)

// LogLevel is the severity of a log line. Values are ordered and are transported
// across the C interface as their integer representation.
type LogLevel uint8

const (
	LogLevelDebug    LogLevel = 10
	LogLevelInfo     LogLevel = 20
	LogLevelWarning  LogLevel = 30
	LogLevelError    LogLevel = 40
	LogLevelCritical LogLevel = 50
)

// IsValid reports whether l is one of the defined levels.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical:
		return true
	default:
		return false
	}
}

// String returns the three letter token rendered inside the brackets of a line.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DBG"
	case LogLevelInfo:
		return "INF"
	case LogLevelWarning:
		return "WRN"
	case LogLevelError:
		return "ERR"
	case LogLevelCritical:
		return "CRT"
	default:
		return "UNK"
	}
}

// ParseLogLevel parses a level from its token (DBG, INF, ...) or its name
// (DEBUG, INFO, WARN, WARNING, ERROR, CRITICAL, CRIT), ignoring case.
func ParseLogLevel(text string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "DBG", "DEBUG":
		return LogLevelDebug, nil
	case "INF", "INFO":
		return LogLevelInfo, nil
	case "WRN", "WARN", "WARNING":
		return LogLevelWarning, nil
	case "ERR", "ERROR":
		return LogLevelError, nil
	case "CRT", "CRIT", "CRITICAL":
		return LogLevelCritical, nil
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidLogLevel, "invalid log level: %q", text)
	}
}

// LogColor selects the foreground color of the level, component and message span.
type LogColor uint8

const (
	LogColorNormal LogColor = iota
	LogColorGreen
	LogColorBlue
	LogColorMagenta
	LogColorCyan
	LogColorYellow
	LogColorRed
)

// IsValid reports whether c is one of the defined colors.
func (c LogColor) IsValid() bool {
	return c <= LogColorRed
}

// String returns the ANSI SGR introducer for c. Normal has none.
func (c LogColor) String() string {
	switch c {
	case LogColorGreen:
		return "\x1b[32m"
	case LogColorBlue:
		return "\x1b[34m"
	case LogColorMagenta:
		return "\x1b[35m"
	case LogColorCyan:
		return "\x1b[36m"
	case LogColorYellow:
		return "\x1b[33m"
	case LogColorRed:
		return "\x1b[31m"
	default:
		return ""
	}
}

// Name returns the lower-case color name.
func (c LogColor) Name() string {
	switch c {
	case LogColorNormal:
		return "normal"
	case LogColorGreen:
		return "green"
	case LogColorBlue:
		return "blue"
	case LogColorMagenta:
		return "magenta"
	case LogColorCyan:
		return "cyan"
	case LogColorYellow:
		return "yellow"
	case LogColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// ParseLogColor parses a color name, ignoring case. An empty string is Normal.
func ParseLogColor(text string) (LogColor, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "normal":
		return LogColorNormal, nil
	case "green":
		return LogColorGreen, nil
	case "blue":
		return LogColorBlue, nil
	case "magenta":
		return LogColorMagenta, nil
	case "cyan":
		return LogColorCyan, nil
	case "yellow":
		return LogColorYellow, nil
	case "red":
		return LogColorRed, nil
	default:
		return LogColorNormal, errors.Newf(errors.ErrCodeInvalidLogColor, "invalid log color: %q", text)
	}
}

// LogFormat is an ANSI SGR formatting sequence.
type LogFormat string

const (
	LogFormatHeader    LogFormat = "\x1b[95m"
	LogFormatBold      LogFormat = "\x1b[1m"
	LogFormatUnderline LogFormat = "\x1b[4m"
	LogFormatEndc      LogFormat = "\x1b[0m"
)

func (f LogFormat) String() string {
	return string(f)
}
