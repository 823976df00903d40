package ffi

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rxtech-lab/argo-logger/internal/types"
	"github.com/rxtech-lab/argo-logger/pkg/logging"
	"github.com/stretchr/testify/suite"
)

const instanceID = "2d89666b-1a1e-4a75-b193-4eb3b454c757"

type memorySink struct {
	pending []byte
	flushed bytes.Buffer
	flushes int
	failing bool
}

func (s *memorySink) WriteAll(p []byte) error {
	if s.failing {
		return io.ErrClosedPipe
	}
	s.pending = append(s.pending, p...)

	return nil
}

func (s *memorySink) Flush() error {
	s.flushes++
	if s.failing {
		return io.ErrClosedPipe
	}
	s.flushed.Write(s.pending)
	s.pending = nil

	return nil
}

type FFITestSuite struct {
	suite.Suite
	stdout *memorySink
	stderr *memorySink
}

func TestFFISuite(t *testing.T) {
	suite.Run(t, new(FFITestSuite))
}

func (suite *FFITestSuite) SetupTest() {
	suite.stdout = &memorySink{}
	suite.stderr = &memorySink{}
}

func (suite *FFITestSuite) newHandle(level logging.LogLevel, isBypassed uint8) Handle {
	h, err := LoggerNewWithSinks("TRADER-001", "user-01", instanceID, uint8(level), isBypassed, suite.stdout, suite.stderr)
	suite.Require().NoError(err)
	suite.Require().NotZero(h)

	return h
}

func (suite *FFITestSuite) TestLoggerNew() {
	h := LoggerNew("TRADER-000", "user-01", instanceID, uint8(logging.LogLevelDebug), 0)
	defer LoggerFree(h)

	suite.NotZero(h)
	suite.Equal("TRADER-000", LoggerGetTraderID(h))
}

func (suite *FFITestSuite) TestLoggerNewPanicsOnInvalidInput() {
	suite.Panics(func() { LoggerNew("", "user-01", instanceID, uint8(logging.LogLevelInfo), 0) })
	suite.Panics(func() { LoggerNew("TRADER-001", "user-01", "not-a-uuid", uint8(logging.LogLevelInfo), 0) })
	suite.Panics(func() { LoggerNew("TRADER-001", "user-01", instanceID, 11, 0) })
}

func (suite *FFITestSuite) TestHandlesAreDistinct() {
	a := suite.newHandle(logging.LogLevelInfo, 0)
	b := suite.newHandle(logging.LogLevelInfo, 0)
	defer LoggerFree(a)
	defer LoggerFree(b)

	suite.NotEqual(a, b)
}

func (suite *FFITestSuite) TestIdentityPreservation() {
	h := suite.newHandle(logging.LogLevelInfo, 0)
	defer LoggerFree(h)

	expected, err := types.ParseUUID4(instanceID)
	suite.Require().NoError(err)

	suite.Equal("TRADER-001", LoggerGetTraderID(h))
	suite.Equal("user-01", LoggerGetMachineID(h))
	suite.Equal(expected.Bytes(), LoggerGetInstanceID(h))
	suite.Equal(uint8(0), LoggerIsBypassed(h))
}

func (suite *FFITestSuite) TestBypassFlagDoesNotSuppress() {
	h := suite.newHandle(logging.LogLevelDebug, 1)
	defer LoggerFree(h)

	LoggerLog(h, 0, uint8(logging.LogLevelInfo), uint8(logging.LogColorNormal), "Strategy", "visible")

	suite.Equal(uint8(1), LoggerIsBypassed(h))
	suite.Contains(suite.stdout.flushed.String(), "[INF] TRADER-001.Strategy: visible")
}

func (suite *FFITestSuite) TestNonZeroBypassIsTrue() {
	h := suite.newHandle(logging.LogLevelDebug, 7)
	defer LoggerFree(h)

	suite.Equal(uint8(1), LoggerIsBypassed(h))
}

func (suite *FFITestSuite) TestLogRouting() {
	h := suite.newHandle(logging.LogLevelWarning, 0)
	defer LoggerFree(h)

	LoggerLog(h, 0, uint8(logging.LogLevelDebug), uint8(logging.LogColorNormal), "Risk", "suppressed")
	LoggerLog(h, 0, uint8(logging.LogLevelWarning), uint8(logging.LogColorYellow), "Risk", "warned")
	LoggerLog(h, 0, uint8(logging.LogLevelCritical), uint8(logging.LogColorRed), "Risk", "critical")

	suite.NotContains(suite.stdout.flushed.String(), "suppressed")
	suite.Equal(1, strings.Count(suite.stdout.flushed.String(), "\n"))
	suite.Contains(suite.stderr.flushed.String(), "[CRT] TRADER-001.Risk: critical")
}

func (suite *FFITestSuite) TestLogSwallowsErrors() {
	h := suite.newHandle(logging.LogLevelDebug, 0)
	defer LoggerFree(h)

	suite.stdout.failing = true
	suite.NotPanics(func() {
		LoggerLog(h, 0, uint8(logging.LogLevelInfo), uint8(logging.LogColorNormal), "Risk", "lost")
		LoggerLog(h, 0, 99, uint8(logging.LogColorNormal), "Risk", "bad level")
		LoggerLog(h, 0, uint8(logging.LogLevelInfo), 99, "Risk", "bad color")
		Flush(h)
	})
}

func (suite *FFITestSuite) TestFreeFlushesAndReleases() {
	h := suite.newHandle(logging.LogLevelInfo, 0)

	LoggerLog(h, 0, uint8(logging.LogLevelInfo), uint8(logging.LogColorNormal), "RiskEngine", "This is a test.")
	before := suite.stdout.flushes

	LoggerFree(h)

	suite.Contains(suite.stdout.flushed.String(), "This is a test.")
	suite.Equal(before+1, suite.stdout.flushes)
	suite.Equal(1, suite.stderr.flushes)
	suite.Empty(LoggerGetTraderID(h))
}

func (suite *FFITestSuite) TestFreeIgnoresFlushErrors() {
	h := suite.newHandle(logging.LogLevelInfo, 0)
	suite.stdout.failing = true
	suite.stderr.failing = true

	suite.NotPanics(func() { LoggerFree(h) })
}

func (suite *FFITestSuite) TestUnknownHandleIsNoop() {
	var stale Handle = 1 << 40

	suite.NotPanics(func() {
		LoggerLog(stale, 0, uint8(logging.LogLevelError), 0, "Risk", "m")
		Flush(stale)
		LoggerFree(stale)
	})
	suite.Empty(LoggerGetTraderID(stale))
	suite.Empty(LoggerGetMachineID(stale))
	suite.Equal([16]byte{}, LoggerGetInstanceID(stale))
	suite.Equal(uint8(0), LoggerIsBypassed(stale))
}

func (suite *FFITestSuite) TestVersion() {
	suite.NotEmpty(Version())
	suite.Equal(uint8(1), ABICompatible(Version()))
	suite.Equal(uint8(0), ABICompatible("99.0.0"))
	suite.Equal(uint8(0), ABICompatible("garbage"))
}
