// Package runner executes fixtures against the compiler under test.
//
// Each fixture is run as a separate child process, strictly one after the
// other. The compiler's working directory is passed explicitly to the child;
// the runner never changes its own working directory, so fixture paths
// resolved before a run stay valid after it.
//
// A fixture passes when the child's exit code equals the code expected for
// its category. Mismatches are reported, never returned as errors. Only
// infrastructure failures (an unlistable fixture directory, a compiler that
// cannot be started) produce errors, wrapped in SuiteError.
package runner
