package ops

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	unknownExitCode = -1
	// How long Run waits for output pipes after the process is killed.
	pipeWaitDelay = time.Second
)

// CommandResult is the outcome of a finished command.
type CommandResult struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Success  bool
	Duration time.Duration
}

// ExecuteCommand runs args[0] with the remaining arguments, without a shell, and
// captures stdout and stderr. With check set, a non-zero exit is returned as a
// *CommandError alongside the result. A command that cannot be started or that
// outlives its deadline always fails.
func (t *Toolkit) ExecuteCommand(ctx context.Context, args []string, check bool) (*CommandResult, error) {
	if len(args) == 0 {
		return nil, &CommandError{ExitCode: unknownExitCode, Err: errors.New("empty command")}
	}

	if t.commandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.commandTimeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...) // #nosec G204 - running caller-supplied commands is the point
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = pipeWaitDelay
	killProcessGroup(cmd)

	start := time.Now()
	runErr := cmd.Run()

	result := &CommandResult{
		Args:     append([]string(nil), args...),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			t.logger.Error().Str("command", strings.Join(args, " ")).Err(runErr).Msg("Command could not be started")
			return nil, &CommandError{Args: result.Args, ExitCode: unknownExitCode, Err: runErr}
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Success = result.ExitCode == 0 && runErr == nil

	if ctxErr := ctx.Err(); ctxErr != nil && !result.Success {
		t.logger.Error().Str("command", strings.Join(args, " ")).Dur("duration", result.Duration).Err(ctxErr).Msg("Command did not finish")
		return result, newCommandError(result, ctxErr)
	}

	if check && !result.Success {
		t.logger.Error().
			Str("command", strings.Join(args, " ")).
			Int("exit_code", result.ExitCode).
			Str("stderr", strings.TrimSpace(result.Stderr)).
			Msg("Command failed")
		return result, newCommandError(result, runErr)
	}

	t.logger.Info().
		Str("command", strings.Join(args, " ")).
		Int("exit_code", result.ExitCode).
		Dur("duration", result.Duration).
		Msg("Command executed")

	return result, nil
}

func newCommandError(result *CommandResult, cause error) *CommandError {
	return &CommandError{
		Args:     result.Args,
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		Err:      cause,
	}
}
