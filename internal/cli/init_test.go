package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"quizdeck/internal/config"
)

// withInitInput scripts the interactive prompts for a test.
func withInitInput(t *testing.T, input string) {
	t.Helper()
	prev := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = prev })
}

// TestInitScaffoldsProject verifies init writes a loadable config and a
// sample bank.
func TestInitScaffoldsProject(t *testing.T) {
	root := t.TempDir()
	configPath := config.ConfigPath(root)
	withInitInput(t, "\n\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Wrote "+configPath) {
		t.Fatalf("expected config write notice, got %q", out.String())
	}
	if _, err := config.Load(configPath); err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}
	if _, err := os.Stat(config.QuestionsPath(configPath, config.DefaultQuestionsFile)); err != nil {
		t.Fatalf("expected sample bank: %v", err)
	}
}

// TestInitRefusesExistingConfig verifies init never overwrites.
func TestInitRefusesExistingConfig(t *testing.T) {
	root := writeProject(t, validConfig, 3)
	withInitInput(t, "\n\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"init", "--config", config.ConfigPath(root)}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("expected already-exists error, got %q", errOut.String())
	}
}

// TestInitCancelled verifies answering no aborts without writing.
func TestInitCancelled(t *testing.T) {
	root := t.TempDir()
	configPath := config.ConfigPath(root)
	withInitInput(t, "n\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Fatalf("expected no config to be written, stat err: %v", err)
	}
}
