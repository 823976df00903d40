// Package config loads and validates logger configuration from YAML.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-logger/internal/types"
	"github.com/rxtech-lab/argo-logger/pkg/errors"
	"github.com/rxtech-lab/argo-logger/pkg/logging"
	"gopkg.in/yaml.v3"
)

// LoggerConfig holds everything needed to construct a logging.Logger.
type LoggerConfig struct {
	// TraderID is the trader identity printed on every line, e.g. TRADER-001
	TraderID string `json:"trader_id" yaml:"trader_id" jsonschema:"title=Trader ID,description=Trader identity printed on every line,example=TRADER-001" validate:"required,traderid"`

	// MachineID identifies the host the process runs on
	MachineID string `json:"machine_id" yaml:"machine_id" jsonschema:"title=Machine ID,description=Host identifier" validate:"required"`

	// InstanceID is the process instance UUID (version 4). Generated when empty.
	InstanceID string `json:"instance_id,omitempty" yaml:"instance_id,omitempty" jsonschema:"title=Instance ID,description=Version 4 UUID of this process instance; generated when empty" validate:"omitempty,uuid4"`

	// LevelStdout is the minimum level written to stdout. Error and above always go to stderr.
	LevelStdout string `json:"level_stdout" yaml:"level_stdout" jsonschema:"title=Stdout level,description=Minimum level written to stdout,enum=DEBUG,enum=INFO,enum=WARNING,enum=ERROR,enum=CRITICAL,default=INFO" validate:"required,loglevel"`

	// IsBypassed tells callers they may skip building log messages
	IsBypassed bool `json:"is_bypassed" yaml:"is_bypassed" jsonschema:"title=Bypass,description=Advisory flag callers read to skip building messages,default=false"`
}

// Default returns a config with every optional field at its default.
func Default() LoggerConfig {
	return LoggerConfig{
		TraderID:    "",
		MachineID:   "",
		InstanceID:  "",
		LevelStdout: "INFO",
		IsBypassed:  false,
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (LoggerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoggerConfig{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (LoggerConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LoggerConfig{}, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return LoggerConfig{}, err
	}

	return cfg, nil
}

// Validate checks the config with the struct tags.
func (c *LoggerConfig) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("loglevel", isLogLevel); err != nil {
		return errors.Wrap(errors.ErrCodeUnknown, "failed to register loglevel validation", err)
	}

	if err := validate.RegisterValidation("traderid", isTraderID); err != nil {
		return errors.Wrap(errors.ErrCodeUnknown, "failed to register traderid validation", err)
	}

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid logger config", err)
	}

	return nil
}

// Instance returns the configured instance id, or None when it should be generated.
func (c *LoggerConfig) Instance() (optional.Option[types.UUID4], error) {
	if c.InstanceID == "" {
		return optional.None[types.UUID4](), nil
	}

	id, err := types.ParseUUID4(c.InstanceID)
	if err != nil {
		return optional.None[types.UUID4](), err
	}

	return optional.Some(id), nil
}

// Build creates a Logger bound to the process stdout and stderr.
func (c *LoggerConfig) Build() (*logging.Logger, error) {
	return c.build(nil, nil)
}

// BuildWithSinks creates a Logger writing to the given sinks.
func (c *LoggerConfig) BuildWithSinks(stdout, stderr logging.Sink) (*logging.Logger, error) {
	return c.build(stdout, stderr)
}

func (c *LoggerConfig) build(stdout, stderr logging.Sink) (*logging.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	traderID, err := types.NewTraderID(c.TraderID)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLogLevel(c.LevelStdout)
	if err != nil {
		return nil, err
	}

	instance, err := c.Instance()
	if err != nil {
		return nil, err
	}

	instanceID := types.NewUUID4()
	if instance.IsSome() {
		instanceID = instance.Unwrap()
	}

	if stdout == nil || stderr == nil {
		return logging.NewLogger(traderID, c.MachineID, instanceID, level, c.IsBypassed), nil
	}

	return logging.NewLoggerWithSinks(traderID, c.MachineID, instanceID, level, c.IsBypassed, stdout, stderr), nil
}

func isLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLogLevel(fl.Field().String())

	return err == nil
}

func isTraderID(fl validator.FieldLevel) bool {
	_, err := types.NewTraderID(fl.Field().String())

	return err == nil
}
