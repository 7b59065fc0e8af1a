// Package config loads the runner configuration.
//
// The configuration file, stagetest.yaml, also anchors the runner root: fixture
// and code directories given as relative paths are resolved against the
// directory that holds it, never against the process working directory.
//
//	compiler: [node, index.js]
//	code_dir: src
//	input_dir: input
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the configuration file looked up beside the executable.
	FileName = "stagetest.yaml"

	// EnvVar names an explicit configuration file path.
	EnvVar = "STAGETEST_CONFIG"
)

// Config describes where fixtures live and how the compiler under test is launched.
type Config struct {
	// Root is the runner root. Set from the config file location, never decoded.
	Root string `yaml:"-" json:"-"`

	// Compiler is the entry point argv. The fixture path is appended as the last argument.
	Compiler []string `yaml:"compiler" json:"compiler"`

	// CodeDir is the working directory of the compiler under test.
	CodeDir string `yaml:"code_dir" json:"code_dir"`

	// InputDir holds the stage_<id> suite directories.
	InputDir string `yaml:"input_dir" json:"input_dir"`
}

// Default returns the built-in configuration rooted at root.
func Default(root string) *Config {
	return &Config{
		Root:     root,
		Compiler: []string{"node", "index.js"},
		CodeDir:  "src",
		InputDir: "input",
	}
}

// Load reads a configuration file. Fields missing from the file keep their
// defaults; unknown fields are rejected.
func Load(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default(filepath.Dir(absPath))
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", absPath, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", absPath, err)
	}

	return cfg, nil
}

// Locate finds the configuration for this process.
//
// Lookup order: explicit path, $STAGETEST_CONFIG, stagetest.yaml beside the
// executable. Without a file, defaults rooted at the executable's directory
// are returned.
func Locate(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path != "" {
		return Load(path)
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)

	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err == nil {
		return Load(candidate)
	}

	return Default(dir), nil
}

// CodeDirPath returns the absolute code directory.
func (c *Config) CodeDirPath() string {
	return c.resolve(c.CodeDir)
}

// InputDirPath returns the absolute input directory.
func (c *Config) InputDirPath() string {
	return c.resolve(c.InputDir)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
