package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Executor launches the compiler under test.
type Executor struct {
	// Command is the entry point argv; the fixture path is appended.
	Command []string

	// Dir is the child's working directory. Relative entries in Command
	// resolve against it.
	Dir string

	// Standard streams handed to the child. Nil discards (stdin reads EOF).
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates an Executor for command run from dir.
func NewExecutor(command []string, dir string) *Executor {
	return &Executor{Command: command, Dir: dir}
}

// Launch runs the compiler on fixture and blocks until it exits.
// A non-zero exit is not an error: the code is returned as-is.
// Processes killed by a signal report -1.
func (e *Executor) Launch(ctx context.Context, fixture string) (int, error) {
	if len(e.Command) == 0 {
		return 0, &LaunchError{Fixture: fixture, Err: fmt.Errorf("compiler command is empty")}
	}

	args := make([]string, 0, len(e.Command))
	args = append(args, e.Command[1:]...)
	args = append(args, fixture)

	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return exitErr.ExitCode(), fmt.Errorf("run cancelled: %w", ctxErr)
		}
		return exitErr.ExitCode(), nil
	}

	return 0, &LaunchError{Command: e.Command, Fixture: fixture, Err: err}
}
