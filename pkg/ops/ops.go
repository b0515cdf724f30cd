// Package ops holds small operational helpers for automation scripts: running
// commands, reading and writing files, and inspecting the host.
//
// Every helper is a method on Toolkit so the logger is supplied by the caller
// rather than taken from process-wide state.
package ops

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	dirPerm  = 0750
	filePerm = 0644

	bytesPerGB = 1 << 30

	defaultProcRoot = "/proc"
)

// Toolkit runs the operational helpers. It holds no mutable state and may be shared.
type Toolkit struct {
	logger         zerolog.Logger
	commandTimeout time.Duration
	procRoot       string
}

// New creates a Toolkit logging to logger. commandTimeout bounds every
// ExecuteCommand call; zero means commands may run until they exit.
func New(logger zerolog.Logger, commandTimeout time.Duration) *Toolkit {
	return &Toolkit{
		logger:         logger,
		commandTimeout: commandTimeout,
		procRoot:       defaultProcRoot,
	}
}
