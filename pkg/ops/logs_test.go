package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// ParseLogFileTestSuite tests log filtering
type ParseLogFileTestSuite struct {
	suite.Suite
	tempDir string
	logPath string
	toolkit *Toolkit
}

// SetupTest runs before each test
func (s *ParseLogFileTestSuite) SetupTest() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "parse-log-test-*")
	s.Require().NoError(err)

	s.logPath = filepath.Join(s.tempDir, "app.log")
	s.Require().NoError(os.WriteFile(s.logPath, []byte("INFO: ok\nERROR: bad\nERROR: worse\n"), 0644))

	s.toolkit = New(zerolog.Nop(), 0)
}

// TearDownTest runs after each test
func (s *ParseLogFileTestSuite) TearDownTest() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

// TestFilterErrors tests filtering preserves order and only keeps matches
func (s *ParseLogFileTestSuite) TestFilterErrors() {
	lines, err := s.toolkit.ParseLogFile(s.logPath, "ERROR")
	s.Require().NoError(err)
	s.Equal([]string{"ERROR: bad", "ERROR: worse"}, lines)
}

// TestNoPattern tests that an empty pattern returns every line
func (s *ParseLogFileTestSuite) TestNoPattern() {
	lines, err := s.toolkit.ParseLogFile(s.logPath, "")
	s.Require().NoError(err)
	s.Equal([]string{"INFO: ok", "ERROR: bad", "ERROR: worse"}, lines)
}

// TestSubstringSemantics tests that patterns are not anchored to the whole line
func (s *ParseLogFileTestSuite) TestSubstringSemantics() {
	testCases := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"middle_of_line", "bad", []string{"ERROR: bad"}},
		{"regex", `wors?e$`, []string{"ERROR: worse"}},
		{"anchored", `^INFO`, []string{"INFO: ok"}},
		{"alternation", `ok|worse`, []string{"INFO: ok", "ERROR: worse"}},
		{"no_match", "FATAL", []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			lines, err := s.toolkit.ParseLogFile(s.logPath, tc.pattern)
			s.Require().NoError(err)
			s.Equal(tc.expected, lines)
		})
	}
}

// TestInvalidPattern tests that a bad regular expression fails before reading
func (s *ParseLogFileTestSuite) TestInvalidPattern() {
	lines, err := s.toolkit.ParseLogFile(filepath.Join(s.tempDir, "missing.log"), "ERROR(")
	s.Nil(lines)

	var patternErr *PatternError
	s.Require().ErrorAs(err, &patternErr)
	s.Equal("ERROR(", patternErr.Pattern)
}

// TestMissingFile tests that an absent log is a NotFoundError
func (s *ParseLogFileTestSuite) TestMissingFile() {
	_, err := s.toolkit.ParseLogFile(filepath.Join(s.tempDir, "missing.log"), "ERROR")

	var notFound *NotFoundError
	s.ErrorAs(err, &notFound)
}

// TestSuite runs the log parsing test suite
func TestParseLogFileSuite(t *testing.T) {
	suite.Run(t, new(ParseLogFileTestSuite))
}
