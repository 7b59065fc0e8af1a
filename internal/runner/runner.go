package runner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/roach88/stagetest/internal/suite"
)

// Outcome is the result of one fixture. It is reported and then dropped.
type Outcome struct {
	Fixture  suite.Fixture
	Expected int
	Observed int
}

// Pass reports whether the observed exit code matched.
func (o Outcome) Pass() bool {
	return o.Observed == o.Expected
}

// Reporter receives progress events in execution order.
type Reporter interface {
	Header(dir suite.Directory)
	Announce(f suite.Fixture)
	Outcome(o Outcome)
	SuiteError(id string, err error)
}

// Runner drives suites through the resolver and executor.
type Runner struct {
	Resolver *suite.Resolver
	Executor *Executor
	Reporter Reporter
	Logger   *slog.Logger

	// KeepGoing continues with the next suite after an infrastructure failure
	// instead of aborting the run.
	KeepGoing bool
}

// New creates a Runner. A nil logger falls back to slog.Default.
func New(resolver *suite.Resolver, executor *Executor, reporter Reporter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Resolver: resolver,
		Executor: executor,
		Reporter: reporter,
		Logger:   logger,
	}
}

// Run executes every suite in order. Duplicate ids run again.
//
// Without KeepGoing the first SuiteError is returned immediately. With it,
// failed suites are reported and all errors are joined once the remaining
// suites have run. Cancellation always stops the run.
func (r *Runner) Run(ctx context.Context, ids []string) error {
	var errs []error
	for _, id := range ids {
		err := r.RunSuite(ctx, id)
		if err == nil {
			continue
		}
		if !r.KeepGoing || ctx.Err() != nil {
			return err
		}
		r.Logger.Warn("suite aborted, continuing", "suite", id, "error", err)
		r.Reporter.SuiteError(id, err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RunSuite runs the valid then the invalid fixtures of one suite.
func (r *Runner) RunSuite(ctx context.Context, id string) error {
	for _, dir := range r.Resolver.Resolve(id) {
		r.Reporter.Header(dir)

		fixtures, err := r.Resolver.List(dir)
		if err != nil {
			return &SuiteError{Suite: id, Err: err}
		}
		r.Logger.Debug("fixtures listed", "suite", id, "category", dir.Category, "dir", dir.Path, "count", len(fixtures))

		for _, f := range fixtures {
			if _, err := r.RunCase(ctx, f); err != nil {
				return &SuiteError{Suite: id, Err: err}
			}
		}
	}
	return nil
}

// RunCase launches the compiler on one fixture and reports the outcome.
func (r *Runner) RunCase(ctx context.Context, f suite.Fixture) (Outcome, error) {
	r.Reporter.Announce(f)

	outcome := Outcome{Fixture: f, Expected: f.ExpectedCode()}

	code, err := r.Executor.Launch(ctx, f.Path)
	if err != nil {
		return outcome, err
	}
	outcome.Observed = code

	r.Logger.Debug("fixture finished",
		"suite", f.Suite,
		"category", f.Category,
		"fixture", f.Path,
		"exit_code", code,
		"expected", outcome.Expected,
		"pass", outcome.Pass(),
	)
	r.Reporter.Outcome(outcome)
	return outcome, nil
}
