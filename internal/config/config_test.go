package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, `
compiler: [sh, stub.sh]
code_dir: bin
input_dir: fixtures
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, []string{"sh", "stub.sh"}, cfg.Compiler)
	assert.Equal(t, filepath.Join(tmpDir, "bin"), cfg.CodeDirPath())
	assert.Equal(t, filepath.Join(tmpDir, "fixtures"), cfg.InputDirPath())
}

func TestLoadKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "code_dir: build\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"node", "index.js"}, cfg.Compiler)
	assert.Equal(t, "build", cfg.CodeDir)
	assert.Equal(t, "input", cfg.InputDir)
}

func TestLoadEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(tmpDir), cfg)
}

func TestLoadAbsoluteDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	codeDir := filepath.Join(t.TempDir(), "code")
	path := writeConfig(t, tmpDir, "code_dir: "+codeDir+"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, codeDir, cfg.CodeDirPath())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "compilr: [gcc]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadRejectsEmptyCompiler(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "compiler: []\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsEmptyCodeDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "code_dir: \"\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidateDefault(t *testing.T) {
	require.NoError(t, Validate(Default("/runner")))
}

func TestValidateNil(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestLocateExplicit(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "input_dir: suites\n")
	t.Setenv(EnvVar, "")

	cfg, err := Locate(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "suites"), cfg.InputDirPath())
}

func TestLocateEnvironment(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "input_dir: from-env\n")
	t.Setenv(EnvVar, path)

	cfg, err := Locate("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.InputDir)
}

func TestLocateExplicitBeatsEnvironment(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(EnvVar, writeConfig(t, envDir, "input_dir: env\n"))

	cfg, err := Locate(writeConfig(t, flagDir, "input_dir: flag\n"))
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.InputDir)
	assert.Equal(t, flagDir, cfg.Root)
}

func TestLocateFallsBackToExecutableDir(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Locate("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Root))
	assert.NotEmpty(t, cfg.Compiler)
}
