package swiftlogger

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

const testInstanceID = "2d89666b-1a1e-4a75-b193-4eb3b454c757"

type recordingHelper struct {
	stdout []string
	stderr []string
	fail   bool
}

func (h *recordingHelper) OnStdout(line string) error {
	if h.fail {
		return errors.New("closed")
	}
	h.stdout = append(h.stdout, line)

	return nil
}

func (h *recordingHelper) OnStderr(line string) error {
	if h.fail {
		return errors.New("closed")
	}
	h.stderr = append(h.stderr, line)

	return nil
}

type SwiftLoggerTestSuite struct {
	suite.Suite
	helper *recordingHelper
}

func TestSwiftLoggerSuite(t *testing.T) {
	suite.Run(t, new(SwiftLoggerTestSuite))
}

func (suite *SwiftLoggerTestSuite) SetupTest() {
	suite.helper = &recordingHelper{}
}

func (suite *SwiftLoggerTestSuite) newLogger(levelStdout int) *Logger {
	logger, err := NewLoggerWithHelper("TRADER-001", "user-01", testInstanceID, levelStdout, false, suite.helper)
	suite.Require().NoError(err)
	suite.Require().NotNil(logger)

	return logger
}

func (suite *SwiftLoggerTestSuite) TestNewLogger() {
	logger, err := NewLogger("TRADER-001", "user-01", testInstanceID, LevelInfo, true)
	suite.Require().NoError(err)
	defer logger.Free()

	suite.Equal("TRADER-001", logger.GetTraderID())
	suite.Equal("user-01", logger.GetMachineID())
	suite.Equal(testInstanceID, logger.GetInstanceID())
	suite.True(logger.IsBypassed())
}

func (suite *SwiftLoggerTestSuite) TestNewLoggerGeneratesInstanceID() {
	logger, err := NewLogger("TRADER-001", "user-01", "", LevelInfo, false)
	suite.Require().NoError(err)
	defer logger.Free()

	suite.Len(logger.GetInstanceID(), 36)
}

func (suite *SwiftLoggerTestSuite) TestNewLoggerRejectsInvalidInput() {
	tests := []struct {
		name        string
		traderID    string
		instanceID  string
		levelStdout int
	}{
		{name: "empty trader", traderID: "", instanceID: testInstanceID, levelStdout: LevelInfo},
		{name: "trader without tag", traderID: "TRADER", instanceID: testInstanceID, levelStdout: LevelInfo},
		{name: "bad instance", traderID: "TRADER-001", instanceID: "abc", levelStdout: LevelInfo},
		{name: "unknown level", traderID: "TRADER-001", instanceID: testInstanceID, levelStdout: 15},
		{name: "negative level", traderID: "TRADER-001", instanceID: testInstanceID, levelStdout: -1},
		{name: "level out of range", traderID: "TRADER-001", instanceID: testInstanceID, levelStdout: 300},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			logger, err := NewLogger(tt.traderID, "user-01", tt.instanceID, tt.levelStdout, false)
			suite.Error(err)
			suite.Nil(logger)
		})
	}
}

func (suite *SwiftLoggerTestSuite) TestNewLoggerWithHelperRequiresHelper() {
	logger, err := NewLoggerWithHelper("TRADER-001", "user-01", testInstanceID, LevelInfo, false, nil)
	suite.Error(err)
	suite.Nil(logger)
}

func (suite *SwiftLoggerTestSuite) TestLogRoutesThroughHelper() {
	logger := suite.newLogger(LevelInfo)
	defer logger.Free()

	logger.Log(0, LevelDebug, ColorNormal, "Risk", "hidden")
	logger.Log(0, LevelInfo, ColorGreen, "Risk", "shown")
	logger.Log(0, LevelError, ColorRed, "Risk", "failed")

	suite.Require().Len(suite.helper.stdout, 1)
	suite.Equal(
		"\x1b[1m1970-01-01T00:00:00.000000000Z\x1b[0m \x1b[32m[INF] TRADER-001.Risk: shown\x1b[0m\n",
		suite.helper.stdout[0],
	)
	suite.Require().Len(suite.helper.stderr, 1)
	suite.Contains(suite.helper.stderr[0], "[ERR] TRADER-001.Risk: failed")
}

func (suite *SwiftLoggerTestSuite) TestLogClampsNegativeTimestamp() {
	logger := suite.newLogger(LevelDebug)
	defer logger.Free()

	logger.Log(-5, LevelInfo, ColorNormal, "Clock", "epoch")

	suite.Require().Len(suite.helper.stdout, 1)
	suite.True(strings.HasPrefix(suite.helper.stdout[0], "\x1b[1m1970-01-01T00:00:00.000000000Z"))
}

func (suite *SwiftLoggerTestSuite) TestLogIgnoresInvalidValues() {
	logger := suite.newLogger(LevelDebug)
	defer logger.Free()

	suite.NotPanics(func() {
		logger.Log(0, 999, ColorNormal, "Risk", "m")
		logger.Log(0, LevelInfo, -1, "Risk", "m")
		logger.Log(0, 11, ColorNormal, "Risk", "m")
	})
	suite.Empty(suite.helper.stdout)
	suite.Empty(suite.helper.stderr)
}

func (suite *SwiftLoggerTestSuite) TestHelperErrorsAreSwallowed() {
	logger := suite.newLogger(LevelDebug)
	suite.helper.fail = true

	suite.NotPanics(func() {
		logger.Log(0, LevelInfo, ColorNormal, "Risk", "lost")
		logger.Flush()
		logger.Free()
	})
}

func (suite *SwiftLoggerTestSuite) TestFreeReleasesLogger() {
	logger := suite.newLogger(LevelInfo)
	logger.Free()

	suite.Empty(logger.GetTraderID())
	suite.Empty(logger.GetInstanceID())
	suite.NotPanics(func() { logger.Log(0, LevelError, ColorRed, "Risk", "after free") })
	suite.Empty(suite.helper.stderr)
}

func (suite *SwiftLoggerTestSuite) TestNewLoggerFromConfig() {
	logger, err := NewLoggerFromConfig(`
trader_id: TRADER-002
machine_id: host-7
instance_id: 2d89666b-1a1e-4a75-b193-4eb3b454c757
level_stdout: WARNING
is_bypassed: true
`)
	suite.Require().NoError(err)
	defer logger.Free()

	suite.Equal("TRADER-002", logger.GetTraderID())
	suite.Equal("host-7", logger.GetMachineID())
	suite.Equal(testInstanceID, logger.GetInstanceID())
	suite.True(logger.IsBypassed())
}

func (suite *SwiftLoggerTestSuite) TestNewLoggerFromConfigInvalid() {
	_, err := NewLoggerFromConfig("trader_id: [")
	suite.Error(err)

	_, err = NewLoggerFromConfig("trader_id: TRADER-001\nmachine_id: m\nlevel_stdout: LOUD\n")
	suite.Error(err)
}

func (suite *SwiftLoggerTestSuite) TestGetLoggerConfigSchema() {
	schema := GetLoggerConfigSchema()

	suite.Contains(schema, "trader_id")
	suite.Contains(schema, "level_stdout")
}

func (suite *SwiftLoggerTestSuite) TestGetVersion() {
	suite.NotEmpty(GetVersion())
}

func (suite *SwiftLoggerTestSuite) TestSupportedCollections() {
	levels := GetSupportedLogLevels()
	suite.Equal(5, levels.Size())
	suite.Equal("DEBUG", levels.Get(0))
	suite.Equal("", levels.Get(5))

	colors := GetSupportedLogColors()
	suite.Equal(7, colors.Size())
	suite.Equal("red", colors.Get(6))
	suite.True(colors.Contains("Cyan"))
	suite.False(colors.Contains("purple"))
	suite.True(levels.Contains("warning"))
}
