package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite tests the log package
type LoggerTestSuite struct {
	suite.Suite
	originalLogger zerolog.Logger
	testOutput     *bytes.Buffer
}

// SetupTest runs before each test
func (s *LoggerTestSuite) SetupTest() {
	s.originalLogger = Logger
	s.testOutput = &bytes.Buffer{}

	// Plain JSON output keeps assertions independent of console formatting
	Logger = zerolog.New(s.testOutput).Level(zerolog.DebugLevel)
}

// TearDownTest runs after each test
func (s *LoggerTestSuite) TearDownTest() {
	Logger = s.originalLogger
}

// TestLevelHelpers tests that each helper writes at its level
func (s *LoggerTestSuite) TestLevelHelpers() {
	Debug().Msg("debug test")
	Info().Msg("info test")
	Warn().Msg("warn test")
	Error().Msg("error test")

	output := s.testOutput.String()
	s.Contains(output, `"level":"debug","message":"debug test"`)
	s.Contains(output, `"level":"info","message":"info test"`)
	s.Contains(output, `"level":"warn","message":"warn test"`)
	s.Contains(output, `"level":"error","message":"error test"`)
}

// TestComponent tests the component field on child loggers
func (s *LoggerTestSuite) TestComponent() {
	logger := Component("apiclient")
	logger.Info().Msg("hello")

	s.Contains(s.testOutput.String(), `"component":"apiclient"`)
}

// TestNewDefaultsToInfo tests that debug output is suppressed unless requested
func (s *LoggerTestSuite) TestNewDefaultsToInfo() {
	var buf bytes.Buffer

	logger := New(&buf, false)
	s.Equal(zerolog.InfoLevel, logger.GetLevel())
	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), "visible")
}

// TestNewDebug tests the debug level constructor
func (s *LoggerTestSuite) TestNewDebug() {
	var buf bytes.Buffer

	logger := New(&buf, true)
	s.Equal(zerolog.DebugLevel, logger.GetLevel())
	logger.Debug().Str("test_key", "test_value").Msg("shown")

	s.Contains(buf.String(), "shown")
	s.Contains(buf.String(), "test_key")
	s.Contains(buf.String(), "test_value")
}

// TestSetDebugMode tests switching the process logger to debug
func (s *LoggerTestSuite) TestSetDebugMode() {
	Logger = Logger.Level(zerolog.InfoLevel)

	SetDebugMode()

	s.Equal(zerolog.DebugLevel, Logger.GetLevel())
}

// TestRetryableLogger tests the retryablehttp adapter
func (s *LoggerTestSuite) TestRetryableLogger() {
	adapter := NewRetryableLogger(Logger)

	adapter.Debug("performing request", "method", "GET", "url", "http://example.com/items")
	adapter.Error("request failed", "error", errors.New("connection refused"))
	adapter.Info("info message")
	adapter.Warn("warn message", "attempt", 1)

	output := s.testOutput.String()
	s.Contains(output, `"method":"GET"`)
	s.Contains(output, `"url":"http://example.com/items"`)
	s.Contains(output, "connection refused")
	s.Contains(output, `"message":"info message"`)
	s.Contains(output, `"attempt":1`)
}

// TestSuite runs the logger test suite
func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
