package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdeck/internal/config"
)

// TestValidateOK verifies a healthy project passes validation.
func TestValidateOK(t *testing.T) {
	root := writeProject(t, validConfig, 9)
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", config.ConfigPath(root)}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Config OK (9 questions)") {
		t.Fatalf("expected ok message, got %q", out.String())
	}
}

// TestValidateBadConfig verifies config issues name the field.
func TestValidateBadConfig(t *testing.T) {
	root := writeProject(t, `version: 7
quiz:
  questions_file: "questions.yml"
`, 3)
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", config.ConfigPath(root)}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "version") {
		t.Fatalf("expected error to mention version, got %q", errOut.String())
	}
}

// TestValidateBadBank verifies question issues are surfaced.
func TestValidateBadBank(t *testing.T) {
	root := writeProject(t, validConfig, 3)
	bank := "- question: \"Which color?\"\n  options: [red, blue]\n  correct_answer: green\n"
	if err := os.WriteFile(filepath.Join(root, "questions.yml"), []byte(bank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", config.ConfigPath(root)}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "correct_answer") {
		t.Fatalf("expected error to mention correct_answer, got %q", errOut.String())
	}
}

// TestValidateUnexpectedArgs verifies stray arguments are rejected.
func TestValidateUnexpectedArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "stray"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "unexpected arguments") {
		t.Fatalf("expected unexpected-arguments error, got %q", errOut.String())
	}
}
