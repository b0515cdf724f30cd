package ops

import (
	"strconv"
	"strings"
)

// NotFoundError is returned when a path the operation needs does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Path
}

// ParseError is returned when a file does not contain valid JSON.
type ParseError struct {
	Path   string
	Offset int64 // byte offset of the syntax error, 0 if unknown
	Err    error
}

func (e *ParseError) Error() string {
	msg := "invalid JSON in " + e.Path
	if e.Offset > 0 {
		msg += " at offset " + strconv.FormatInt(e.Offset, 10)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingConfigError is returned when a required environment variable is not set.
type MissingConfigError struct {
	Name string
}

func (e *MissingConfigError) Error() string {
	return "environment variable " + e.Name + " not set"
}

// CommandError is returned when a command cannot be started, exits non-zero
// under check, or is stopped by its deadline.
type CommandError struct {
	Args     []string
	ExitCode int // -1 when the process never started or was killed
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := "command " + strconv.Quote(strings.Join(e.Args, " "))
	switch {
	case e.ExitCode >= 0:
		msg += " exited with code " + strconv.Itoa(e.ExitCode)
	case e.Err != nil:
		msg += " failed"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// PatternError is returned when a log filter is not a valid regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return "invalid pattern " + strconv.Quote(e.Pattern) + ": " + e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
