package ops

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

const unsetVariable = "OPSKIT_TEST_UNSET_VAR"

// EnvTestSuite tests environment variable access
type EnvTestSuite struct {
	suite.Suite
	toolkit *Toolkit
}

// SetupTest runs before each test
func (s *EnvTestSuite) SetupTest() {
	s.toolkit = New(zerolog.Nop(), 0)
	s.Require().NoError(os.Unsetenv(unsetVariable))
}

// TestSet tests reading a set variable
func (s *EnvTestSuite) TestSet() {
	s.T().Setenv("OPSKIT_TEST_REGION", "eu-west-1")

	value, err := s.toolkit.GetEnvironmentVariable("OPSKIT_TEST_REGION")
	s.NoError(err)
	s.Equal("eu-west-1", value)

	s.Equal("eu-west-1", s.toolkit.GetEnvironmentVariableOr("OPSKIT_TEST_REGION", "us-east-1"))
}

// TestUnset tests that an unset variable without fallback is a MissingConfigError
func (s *EnvTestSuite) TestUnset() {
	value, err := s.toolkit.GetEnvironmentVariable(unsetVariable)
	s.Empty(value)

	var missing *MissingConfigError
	s.Require().ErrorAs(err, &missing)
	s.Equal(unsetVariable, missing.Name)
	s.Equal("environment variable "+unsetVariable+" not set", err.Error())
}

// TestFallback tests that the fallback is returned for unset variables
func (s *EnvTestSuite) TestFallback() {
	s.Equal("x", s.toolkit.GetEnvironmentVariableOr(unsetVariable, "x"))
}

// TestEmptyIsSet tests that a variable set to the empty string is present
func (s *EnvTestSuite) TestEmptyIsSet() {
	s.T().Setenv("OPSKIT_TEST_EMPTY", "")

	value, err := s.toolkit.GetEnvironmentVariable("OPSKIT_TEST_EMPTY")
	s.NoError(err)
	s.Equal("", value)
	s.Equal("", s.toolkit.GetEnvironmentVariableOr("OPSKIT_TEST_EMPTY", "x"))
}

// TestSuite runs the environment test suite
func TestEnvSuite(t *testing.T) {
	suite.Run(t, new(EnvTestSuite))
}
