package logging

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapCore is a zapcore.Core that renders entries as Logger lines. It shares
// the Logger's routing and is no more concurrency safe than the Logger.
type zapCore struct {
	logger    *Logger
	component string
	fields    []zapcore.Field
}

// NewZapCore returns a zapcore.Core writing through logger. Entries from a
// named zap logger use the zap name as component, otherwise component.
func NewZapCore(logger *Logger, component string) zapcore.Core {
	return &zapCore{
		logger:    logger,
		component: component,
	}
}

// NewZapLogger wraps NewZapCore in a *zap.Logger.
func NewZapLogger(logger *Logger, component string) *zap.Logger {
	return zap.New(NewZapCore(logger, component))
}

func (c *zapCore) Enabled(level zapcore.Level) bool {
	l := fromZapLevel(level)

	return l >= LogLevelError || l >= c.logger.LevelStdout()
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)

	return &zapCore{
		logger:    c.logger,
		component: c.component,
		fields:    merged,
	}
}

func (c *zapCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}

	return checked
}

func (c *zapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	component := c.component
	if entry.LoggerName != "" {
		component = entry.LoggerName
	}

	level := fromZapLevel(entry.Level)
	msg := entry.Message + renderFields(c.fields, fields)

	return c.logger.Log(toUnixNanos(entry.Time), level, colorFor(level), component, msg)
}

func (c *zapCore) Sync() error {
	return c.logger.Flush()
}

func fromZapLevel(level zapcore.Level) LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return LogLevelDebug
	case level == zapcore.InfoLevel:
		return LogLevelInfo
	case level == zapcore.WarnLevel:
		return LogLevelWarning
	case level == zapcore.ErrorLevel:
		return LogLevelError
	default:
		return LogLevelCritical
	}
}

func colorFor(level LogLevel) LogColor {
	switch {
	case level >= LogLevelError:
		return LogColorRed
	case level == LogLevelWarning:
		return LogColorYellow
	default:
		return LogColorNormal
	}
}

// renderFields encodes fields as " key=value" pairs sorted by key.
func renderFields(groups ...[]zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, fields := range groups {
		for _, field := range fields {
			field.AddTo(enc)
		}
	}

	if len(enc.Fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(enc.Fields))
	for key := range enc.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&sb, " %s=%v", key, enc.Fields[key])
	}

	return sb.String()
}
