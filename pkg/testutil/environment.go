// pkg/testutil/environment.go
// DEPENDENCIES: config
// PURPOSE: Orchestrate isolated test environments for solvers and commands

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/aoc/pkg/config"
	"github.com/arthur-debert/aoc/pkg/puzzle"
)

// TestEnvironment is a temporary working directory with its own inputs
// directory and XDG homes
type TestEnvironment struct {
	// Root is the working directory of the test
	Root string
	// InputsDir holds the puzzle inputs, laid out as {year}/{day}.txt
	InputsDir  string
	ConfigHome string
	StateHome  string

	// Config is the default configuration with InputsDir applied
	Config *config.Config

	t *testing.T
}

// NewTestEnvironment creates the environment and moves the test into it.
// XDG_CONFIG_HOME and XDG_STATE_HOME point inside the environment so user
// config and log files never leak between tests.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		Root:       t.TempDir(),
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}
	env.InputsDir = filepath.Join(env.Root, "inputs")

	// Reload after the variables are restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()

	t.Chdir(env.Root)

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	cfg.Inputs.Dir = env.InputsDir
	env.Config = cfg

	return env
}

// WithInput stores content as the input of id and returns the environment
func (env *TestEnvironment) WithInput(id puzzle.ID, content string) *TestEnvironment {
	env.t.Helper()
	env.InputPath(id, content)
	return env
}

// WithInputs stores several inputs at once
func (env *TestEnvironment) WithInputs(inputs map[puzzle.ID]string) *TestEnvironment {
	env.t.Helper()
	for id, content := range inputs {
		env.InputPath(id, content)
	}
	return env
}

// InputPath stores content as the input of id and returns its path
func (env *TestEnvironment) InputPath(id puzzle.ID, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.InputsDir, id.String()+".txt", content)
}

// WriteFile creates a file relative to Root and returns its path
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Root, name, content)
}
