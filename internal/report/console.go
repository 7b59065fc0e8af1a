// Package report renders test progress to the console.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/stagetest/internal/runner"
	"github.com/roach88/stagetest/internal/suite"
)

// UsageMessage is printed when no suite identifiers are given.
const UsageMessage = "Please enter one or more test suite identifiers to run. Exiting."

// Console writes human-readable progress lines. Fixture paths are shown
// relative to Root when possible.
type Console struct {
	w     io.Writer
	root  string
	title cases.Caser

	header *color.Color
	pass   *color.Color
	fail   *color.Color
}

// NewConsole creates a console reporter. With colorize false no ANSI
// sequences are written.
func NewConsole(w io.Writer, root string, colorize bool) *Console {
	c := &Console{
		w:      w,
		root:   root,
		title:  cases.Title(language.English),
		header: color.New(color.FgBlue, color.Bold),
		pass:   color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
	}
	if colorize {
		c.header.EnableColor()
		c.pass.EnableColor()
		c.fail.EnableColor()
	} else {
		c.header.DisableColor()
		c.pass.DisableColor()
		c.fail.DisableColor()
	}
	return c
}

var _ runner.Reporter = (*Console)(nil)

// Header announces a suite category.
func (c *Console) Header(dir suite.Directory) {
	c.header.Fprintf(c.w, "Running tests for %s programs (suite %s)\n", c.title.String(string(dir.Category)), dir.Suite)
}

// Announce names the fixture about to run.
func (c *Console) Announce(f suite.Fixture) {
	fmt.Fprintf(c.w, "Running test: %s\n", c.display(f))
}

// Outcome prints the pass/fail line for a fixture.
func (c *Console) Outcome(o runner.Outcome) {
	if o.Pass() {
		c.pass.Fprintln(c.w, "✓ Test passed")
		return
	}
	c.fail.Fprintf(c.w, "✗ Test failed (exit code %d, expected %d)\n", o.Observed, o.Expected)
}

// SuiteError reports an infrastructure failure that stopped a suite.
func (c *Console) SuiteError(id string, err error) {
	c.fail.Fprintf(c.w, "✗ Suite %s aborted: %v\n", id, err)
}

func (c *Console) display(f suite.Fixture) string {
	if c.root == "" {
		return f.Path
	}
	rel, err := filepath.Rel(c.root, f.Path)
	if err != nil {
		return f.Path
	}
	return filepath.Join(filepath.Dir(rel), f.Name)
}
