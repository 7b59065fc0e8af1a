package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tree is a throwaway runner root laid out the way stagetest expects:
//
//	<root>/stagetest.yaml
//	<root>/src/stub.sh
//	<root>/input/stage_<id>/{valid,invalid}/...
type Tree struct {
	t    testing.TB
	Root string
}

// NewTree creates an empty runner root in a temp directory.
func NewTree(t testing.TB) *Tree {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	return &Tree{t: t, Root: root}
}

// CodeDir returns the directory the stub compiler lives in.
func (tr *Tree) CodeDir() string {
	return filepath.Join(tr.Root, "src")
}

// InputDir returns the directory holding the stage_<id> suites.
func (tr *Tree) InputDir() string {
	return filepath.Join(tr.Root, "input")
}

// CategoryDir creates and returns an (empty) category directory.
func (tr *Tree) CategoryDir(suiteID, category string) string {
	tr.t.Helper()
	dir := filepath.Join(tr.InputDir(), "stage_"+suiteID, category)
	require.NoError(tr.t, os.MkdirAll(dir, 0755))
	return dir
}

// AddFixture writes a fixture file and returns its path.
func (tr *Tree) AddFixture(suiteID, category, name string) string {
	tr.t.Helper()
	path := filepath.Join(tr.CategoryDir(suiteID, category), name)
	require.NoError(tr.t, os.WriteFile(path, []byte("int main(void) { return 0; }\n"), 0644))
	return path
}

// StubCommand is the compiler argv that runs the stub written by WriteStub.
func (tr *Tree) StubCommand() []string {
	return []string{"sh", "stub.sh"}
}

// WriteStub installs a shell compiler stub. Fixtures whose base name is a
// key of codes exit with that code; all others exit with fallback.
// Each invocation appends "<cwd> <fixture>" to CallLog().
func (tr *Tree) WriteStub(codes map[string]int, fallback int) {
	tr.t.Helper()

	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "echo \"$(pwd) $1\" >> '%s'\n", tr.CallLog())
	b.WriteString("case \"$(basename \"$1\")\" in\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  '%s') exit %d ;;\n", name, codes[name])
	}
	fmt.Fprintf(&b, "  *) exit %d ;;\nesac\n", fallback)

	path := filepath.Join(tr.CodeDir(), "stub.sh")
	require.NoError(tr.t, os.WriteFile(path, []byte(b.String()), 0755))
}

// CallLog is the file the stub appends its invocations to.
func (tr *Tree) CallLog() string {
	return filepath.Join(tr.Root, "calls.log")
}

// Calls returns the recorded stub invocations, one "<cwd> <fixture>" per entry.
func (tr *Tree) Calls() []string {
	tr.t.Helper()
	data, err := os.ReadFile(tr.CallLog())
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(tr.t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// WriteConfig writes stagetest.yaml pointing at the stub and returns its path.
func (tr *Tree) WriteConfig() string {
	tr.t.Helper()
	path := filepath.Join(tr.Root, "stagetest.yaml")
	content := "compiler: [sh, stub.sh]\ncode_dir: src\ninput_dir: input\n"
	require.NoError(tr.t, os.WriteFile(path, []byte(content), 0644))
	return path
}
