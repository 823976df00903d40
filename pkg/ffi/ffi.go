// Package ffi is the handle-based interface the C library in cmd/liblogger
// exports. It only deals in Go values; string and struct marshalling happens
// in the cgo layer.
//
// Caller obligations:
//   - A handle is used only between LoggerNew and LoggerFree.
//   - No two threads use the same handle concurrently.
//
// Operations on an unknown or released handle do nothing and return zero values.
// Write failures are swallowed: a logger that cannot write must not take the
// host process down with it.
package ffi

import (
	"github.com/rxtech-lab/argo-logger/internal/types"
	"github.com/rxtech-lab/argo-logger/internal/version"
	"github.com/rxtech-lab/argo-logger/pkg/errors"
	"github.com/rxtech-lab/argo-logger/pkg/logging"
)

// LoggerNew creates a logger bound to the process stdout and stderr.
// It panics if any argument is invalid; it never returns a zero Handle.
func LoggerNew(traderID, machineID, instanceID string, levelStdout uint8, isBypassed uint8) Handle {
	logger, err := newLogger(traderID, machineID, instanceID, levelStdout, isBypassed, nil, nil)
	if err != nil {
		panic(err)
	}

	return register(logger)
}

// LoggerNewWithSinks is LoggerNew with caller-supplied sinks.
func LoggerNewWithSinks(
	traderID, machineID, instanceID string,
	levelStdout uint8,
	isBypassed uint8,
	stdout, stderr logging.Sink,
) (Handle, error) {
	logger, err := newLogger(traderID, machineID, instanceID, levelStdout, isBypassed, stdout, stderr)
	if err != nil {
		return 0, err
	}

	return register(logger), nil
}

// LoggerFree flushes both streams, ignoring errors, and releases the handle.
func LoggerFree(h Handle) {
	logger, err := release(h).Take()
	if err != nil {
		return
	}

	_ = logger.Flush()
}

// Flush flushes both streams, ignoring errors.
func Flush(h Handle) {
	logger, err := lookup(h).Take()
	if err != nil {
		return
	}

	_ = logger.Flush()
}

func LoggerGetTraderID(h Handle) string {
	logger, err := lookup(h).Take()
	if err != nil {
		return ""
	}

	return logger.TraderID().String()
}

func LoggerGetMachineID(h Handle) string {
	logger, err := lookup(h).Take()
	if err != nil {
		return ""
	}

	return logger.MachineID()
}

// LoggerGetInstanceID returns a copy of the 128-bit instance id.
func LoggerGetInstanceID(h Handle) [16]byte {
	logger, err := lookup(h).Take()
	if err != nil {
		return [16]byte{}
	}

	return logger.InstanceID().Bytes()
}

// LoggerIsBypassed returns 1 when the bypass flag is set, else 0.
func LoggerIsBypassed(h Handle) uint8 {
	logger, err := lookup(h).Take()
	if err != nil || !logger.IsBypassed() {
		return 0
	}

	return 1
}

// LoggerLog logs one event. Every error is discarded.
func LoggerLog(h Handle, timestampNs uint64, level uint8, color uint8, component string, msg string) {
	logger, err := lookup(h).Take()
	if err != nil {
		return
	}

	_ = logger.Log(timestampNs, logging.LogLevel(level), logging.LogColor(color), component, msg)
}

// Version returns the library version string.
func Version() string {
	return version.GetVersion()
}

// ABICompatible returns 1 when a host built against hostVersion can use this library.
func ABICompatible(hostVersion string) uint8 {
	if version.CheckVersionCompatibility(version.GetVersion(), hostVersion) != nil {
		return 0
	}

	return 1
}

func newLogger(
	traderID, machineID, instanceID string,
	levelStdout uint8,
	isBypassed uint8,
	stdout, stderr logging.Sink,
) (*logging.Logger, error) {
	trader, err := types.NewTraderID(traderID)
	if err != nil {
		return nil, err
	}

	instance, err := types.ParseUUID4(instanceID)
	if err != nil {
		return nil, err
	}

	level := logging.LogLevel(levelStdout)
	if !level.IsValid() {
		return nil, errors.Newf(errors.ErrCodeInvalidLogLevel, "invalid stdout level: %d", levelStdout)
	}

	if stdout == nil || stderr == nil {
		return logging.NewLogger(trader, machineID, instance, level, isBypassed != 0), nil
	}

	return logging.NewLoggerWithSinks(trader, machineID, instance, level, isBypassed != 0, stdout, stderr), nil
}
