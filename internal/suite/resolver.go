package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// stagePrefix names a suite directory: stage_<id>.
const stagePrefix = "stage_"

// Directory is one category directory of a suite.
type Directory struct {
	Suite    string
	Category Category
	Path     string
}

// Fixture is a single test case handed to the compiler under test.
type Fixture struct {
	Suite    string
	Category Category

	// Name is the NFC-normalized entry name, used for display only.
	Name string

	// Path is the path passed to the compiler, exactly as listed.
	Path string
}

// ExpectedCode returns the exit code this fixture must produce.
func (f Fixture) ExpectedCode() int {
	return f.Category.ExpectedCode()
}

// Resolver maps suite identifiers to fixture directories under InputDir.
type Resolver struct {
	InputDir string
}

// NewResolver creates a Resolver rooted at inputDir.
func NewResolver(inputDir string) *Resolver {
	return &Resolver{InputDir: inputDir}
}

// Resolve returns the fixture directories for a suite, valid first.
// The directories are not checked for existence.
func (r *Resolver) Resolve(id string) []Directory {
	dirs := make([]Directory, 0, len(Categories))
	for _, cat := range Categories {
		dirs = append(dirs, Directory{
			Suite:    id,
			Category: cat,
			Path:     filepath.Join(r.InputDir, stagePrefix+id, string(cat)),
		})
	}
	return dirs
}

// List returns the immediate children of dir in lexical order.
// Nested directories are listed like any other entry.
func (r *Resolver) List(dir Directory) ([]Fixture, error) {
	entries, err := os.ReadDir(dir.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s fixtures of suite %q: %w", dir.Category, dir.Suite, err)
	}

	fixtures := make([]Fixture, 0, len(entries))
	for _, entry := range entries {
		fixtures = append(fixtures, Fixture{
			Suite:    dir.Suite,
			Category: dir.Category,
			Name:     norm.NFC.String(entry.Name()),
			Path:     filepath.Join(dir.Path, entry.Name()),
		})
	}
	return fixtures, nil
}
