package runner

import (
	"fmt"
	"strings"
)

// LaunchError means the compiler under test could not be started at all.
type LaunchError struct {
	Command []string
	Fixture string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q for %s: %v", strings.Join(e.Command, " "), e.Fixture, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// SuiteError ties an infrastructure failure to the suite it stopped.
type SuiteError struct {
	Suite string
	Err   error
}

func (e *SuiteError) Error() string {
	return fmt.Sprintf("suite %s: %v", e.Suite, e.Err)
}

func (e *SuiteError) Unwrap() error {
	return e.Err
}
