package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger used for tool diagnostics. Product log lines go
// through pkg/logging instead.
type Logger struct {
	*zap.Logger
}

// NewLogger creates a new diagnostics logger writing JSON to stderr, keeping
// stdout free for log lines.
func NewLogger() (*Logger, error) {
	return NewLoggerAt(zapcore.InfoLevel)
}

// NewLoggerAt is NewLogger with an explicit minimum level.
func NewLoggerAt(level zapcore.Level) (*Logger, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
