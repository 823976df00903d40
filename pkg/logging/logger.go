// Package logging is a synchronous, leveled, ANSI-colorized line logger for a
// single trading process.
//
// Every accepted call formats one line and writes it to exactly one of two
// buffered streams, flushing that stream before returning:
//
//	level >= Error                  -> stderr
//	Error > level >= levelStdout    -> stdout
//	level < levelStdout             -> suppressed
//
// A Logger owns no goroutines and is not safe for concurrent use; callers
// sharing one across goroutines must serialize access.
package logging

import (
	"os"

	"github.com/rxtech-lab/argo-logger/internal/types"
	"github.com/rxtech-lab/argo-logger/pkg/errors"
)

// Logger writes formatted lines for one trader process.
type Logger struct {
	traderID    types.TraderID
	machineID   string
	instanceID  types.UUID4
	levelStdout LogLevel
	isBypassed  bool

	out Sink
	err Sink
}

// NewLogger creates a Logger writing to the process stdout and stderr.
func NewLogger(
	traderID types.TraderID,
	machineID string,
	instanceID types.UUID4,
	levelStdout LogLevel,
	isBypassed bool,
) *Logger {
	return NewLoggerWithSinks(
		traderID,
		machineID,
		instanceID,
		levelStdout,
		isBypassed,
		NewStreamSink(os.Stdout),
		NewStreamSink(os.Stderr),
	)
}

// NewLoggerWithSinks creates a Logger writing to the given sinks. The Logger
// takes ownership of both.
func NewLoggerWithSinks(
	traderID types.TraderID,
	machineID string,
	instanceID types.UUID4,
	levelStdout LogLevel,
	isBypassed bool,
	stdout Sink,
	stderr Sink,
) *Logger {
	return &Logger{
		traderID:    traderID,
		machineID:   machineID,
		instanceID:  instanceID,
		levelStdout: levelStdout,
		isBypassed:  isBypassed,
		out:         stdout,
		err:         stderr,
	}
}

func (l *Logger) TraderID() types.TraderID {
	return l.traderID
}

func (l *Logger) MachineID() string {
	return l.machineID
}

func (l *Logger) InstanceID() types.UUID4 {
	return l.instanceID
}

// LevelStdout is the minimum level written to stdout.
func (l *Logger) LevelStdout() LogLevel {
	return l.levelStdout
}

// IsBypassed is advisory: callers may check it to skip building expensive
// messages. Log does not consult it.
func (l *Logger) IsBypassed() bool {
	return l.isBypassed
}

// Log writes one line for the event, or nothing when level is below the stdout
// threshold and below Error.
func (l *Logger) Log(
	timestampNs uint64,
	level LogLevel,
	color LogColor,
	component string,
	msg string,
) error {
	if !level.IsValid() {
		return errors.Newf(errors.ErrCodeInvalidLogLevel, "invalid log level: %d", level)
	}

	if !color.IsValid() {
		return errors.Newf(errors.ErrCodeInvalidLogColor, "invalid log color: %d", color)
	}

	switch {
	case level >= LogLevelError:
		return emit(l.err, "stderr", FormatLine(timestampNs, level, color, l.traderID, component, msg))
	case level >= l.levelStdout:
		return emit(l.out, "stdout", FormatLine(timestampNs, level, color, l.traderID, component, msg))
	default:
		return nil
	}
}

func (l *Logger) Debug(timestampNs uint64, color LogColor, component string, msg string) error {
	return l.Log(timestampNs, LogLevelDebug, color, component, msg)
}

func (l *Logger) Info(timestampNs uint64, color LogColor, component string, msg string) error {
	return l.Log(timestampNs, LogLevelInfo, color, component, msg)
}

func (l *Logger) Warn(timestampNs uint64, color LogColor, component string, msg string) error {
	return l.Log(timestampNs, LogLevelWarning, color, component, msg)
}

func (l *Logger) Error(timestampNs uint64, color LogColor, component string, msg string) error {
	return l.Log(timestampNs, LogLevelError, color, component, msg)
}

func (l *Logger) Critical(timestampNs uint64, color LogColor, component string, msg string) error {
	return l.Log(timestampNs, LogLevelCritical, color, component, msg)
}

// Flush flushes stdout then stderr. Both are attempted; the first error is returned.
func (l *Logger) Flush() error {
	outErr := l.out.Flush()
	errErr := l.err.Flush()

	if outErr != nil {
		return errors.Wrap(errors.ErrCodeIoFlush, "failed to flush stdout", outErr)
	}

	if errErr != nil {
		return errors.Wrap(errors.ErrCodeIoFlush, "failed to flush stderr", errErr)
	}

	return nil
}

func emit(sink Sink, stream string, line []byte) error {
	if err := sink.WriteAll(line); err != nil {
		return errors.Wrapf(errors.ErrCodeIoWrite, err, "failed to write log line to %s", stream)
	}

	if err := sink.Flush(); err != nil {
		return errors.Wrapf(errors.ErrCodeIoFlush, err, "failed to flush %s", stream)
	}

	return nil
}
