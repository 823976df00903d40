package swiftlogger

import (
	"github.com/rxtech-lab/argo-logger/internal/config"
	"github.com/rxtech-lab/argo-logger/internal/version"
	"github.com/rxtech-lab/argo-logger/pkg/errors"
	"github.com/rxtech-lab/argo-logger/pkg/ffi"
	"github.com/rxtech-lab/argo-logger/pkg/logging"
)

// Level and color values accepted by Logger.Log, re-exported as plain ints for gomobile.
const (
	LevelDebug    = int(logging.LogLevelDebug)
	LevelInfo     = int(logging.LogLevelInfo)
	LevelWarning  = int(logging.LogLevelWarning)
	LevelError    = int(logging.LogLevelError)
	LevelCritical = int(logging.LogLevelCritical)

	ColorNormal  = int(logging.LogColorNormal)
	ColorGreen   = int(logging.LogColorGreen)
	ColorBlue    = int(logging.LogColorBlue)
	ColorMagenta = int(logging.LogColorMagenta)
	ColorCyan    = int(logging.LogColorCyan)
	ColorYellow  = int(logging.LogColorYellow)
	ColorRed     = int(logging.LogColorRed)
)

// LoggerHelper receives formatted lines instead of the process streams.
// Swift consumers implement this to forward lines to os_log or a view.
type LoggerHelper interface {
	// OnStdout is called with every line routed to stdout.
	OnStdout(line string) error

	// OnStderr is called with every line routed to stderr.
	OnStderr(line string) error
}

// Logger wraps a logger handle for Swift consumers.
// A Logger must not be used from more than one thread at a time.
type Logger struct {
	handle ffi.Handle
}

// NewLogger creates a logger writing to the process stdout and stderr.
func NewLogger(traderID, machineID, instanceID string, levelStdout int, isBypassed bool) (*Logger, error) {
	return newLogger(traderID, machineID, instanceID, levelStdout, isBypassed, nil)
}

// NewLoggerWithHelper creates a logger delivering lines to helper.
func NewLoggerWithHelper(traderID, machineID, instanceID string, levelStdout int, isBypassed bool, helper LoggerHelper) (*Logger, error) {
	if helper == nil {
		return nil, errors.New(errors.ErrCodeMissingParameter, "helper is required")
	}

	return newLogger(traderID, machineID, instanceID, levelStdout, isBypassed, helper)
}

// NewLoggerFromConfig creates a logger from a YAML config conforming to GetLoggerConfigSchema().
func NewLoggerFromConfig(configYAML string) (*Logger, error) {
	cfg, err := config.Parse([]byte(configYAML))
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLogLevel(cfg.LevelStdout)
	if err != nil {
		return nil, err
	}

	instance, err := cfg.Instance()
	if err != nil {
		return nil, err
	}

	instanceID := ""
	if instance.IsSome() {
		instanceID = instance.Unwrap().String()
	}

	return newLogger(cfg.TraderID, cfg.MachineID, instanceID, int(level), cfg.IsBypassed, nil)
}

// Log logs one event. Errors are discarded. Negative timestamps are treated as the epoch.
func (l *Logger) Log(timestampNs int64, level int, color int, component string, msg string) {
	if timestampNs < 0 {
		timestampNs = 0
	}

	if level < 0 || level > 255 || color < 0 || color > 255 {
		return
	}

	ffi.LoggerLog(l.handle, uint64(timestampNs), uint8(level), uint8(color), component, msg)
}

// Flush flushes both streams, ignoring errors.
func (l *Logger) Flush() {
	ffi.Flush(l.handle)
}

// Free flushes and releases the logger. The Logger must not be used afterwards.
func (l *Logger) Free() {
	ffi.LoggerFree(l.handle)
}

func (l *Logger) GetTraderID() string {
	return ffi.LoggerGetTraderID(l.handle)
}

func (l *Logger) GetMachineID() string {
	return ffi.LoggerGetMachineID(l.handle)
}

// GetInstanceID returns the instance UUID in canonical text form.
func (l *Logger) GetInstanceID() string {
	id := ffi.LoggerGetInstanceID(l.handle)
	if id == [16]byte{} {
		return ""
	}

	return instanceString(id)
}

func (l *Logger) IsBypassed() bool {
	return ffi.LoggerIsBypassed(l.handle) != 0
}

// GetLoggerConfigSchema returns the JSON schema accepted by NewLoggerFromConfig.
// Returns empty string if the schema cannot be generated.
func GetLoggerConfigSchema() string {
	schema, err := config.GetConfigSchema()
	if err != nil {
		return ""
	}

	return schema
}

// GetVersion returns the library version.
func GetVersion() string {
	return version.GetVersion()
}

// GetSupportedLogLevels returns the level names accepted in configs.
func GetSupportedLogLevels() NameCollection {
	return nameList{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
}

// GetSupportedLogColors returns the color names in value order.
func GetSupportedLogColors() NameCollection {
	colors := make(nameList, 0, int(logging.LogColorRed)+1)
	for c := logging.LogColorNormal; c <= logging.LogColorRed; c++ {
		colors = append(colors, c.Name())
	}

	return colors
}

func newLogger(traderID, machineID, instanceID string, levelStdout int, isBypassed bool, helper LoggerHelper) (*Logger, error) {
	if levelStdout < 0 || levelStdout > 255 {
		return nil, errors.Newf(errors.ErrCodeInvalidLogLevel, "invalid stdout level: %d", levelStdout)
	}

	if instanceID == "" {
		instanceID = newInstanceID()
	}

	bypass := uint8(0)
	if isBypassed {
		bypass = 1
	}

	var stdout, stderr logging.Sink
	if helper != nil {
		stdout = &helperSink{deliver: helper.OnStdout}
		stderr = &helperSink{deliver: helper.OnStderr}
	} else {
		stdout = logging.NewStreamSink(osStdout)
		stderr = logging.NewStreamSink(osStderr)
	}

	h, err := ffi.LoggerNewWithSinks(traderID, machineID, instanceID, uint8(levelStdout), bypass, stdout, stderr)
	if err != nil {
		return nil, err
	}

	return &Logger{handle: h}, nil
}
