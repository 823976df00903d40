package logging

// Adapter binds a Logger to a component name and a clock so call sites only
// pass the message.
type Adapter struct {
	logger    *Logger
	component string
	clock     Clock
}

// NewAdapter creates an Adapter. A nil clock uses LiveClock.
func NewAdapter(logger *Logger, component string, clock Clock) *Adapter {
	if clock == nil {
		clock = LiveClock{}
	}

	return &Adapter{
		logger:    logger,
		component: component,
		clock:     clock,
	}
}

func (a *Adapter) Component() string {
	return a.component
}

func (a *Adapter) IsBypassed() bool {
	return a.logger.IsBypassed()
}

func (a *Adapter) Debug(msg string, color LogColor) error {
	return a.logger.Debug(a.clock.TimestampNs(), color, a.component, msg)
}

func (a *Adapter) Info(msg string, color LogColor) error {
	return a.logger.Info(a.clock.TimestampNs(), color, a.component, msg)
}

func (a *Adapter) Warning(msg string, color LogColor) error {
	return a.logger.Warn(a.clock.TimestampNs(), color, a.component, msg)
}

func (a *Adapter) Error(msg string, color LogColor) error {
	return a.logger.Error(a.clock.TimestampNs(), color, a.component, msg)
}

func (a *Adapter) Critical(msg string, color LogColor) error {
	return a.logger.Critical(a.clock.TimestampNs(), color, a.component, msg)
}

// Exception logs msg and cause at Error level in red.
func (a *Adapter) Exception(msg string, cause error) error {
	if cause != nil {
		msg = msg + ": " + cause.Error()
	}

	return a.logger.Error(a.clock.TimestampNs(), LogColorRed, a.component, msg)
}
