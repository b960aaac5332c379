package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"quizdeck/internal/config"
)

// writeProject lays out a project root with a config and a bank of n
// valid questions, returning the project root.
func writeProject(t *testing.T, configBody string, bankSize int) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(config.ConfigDir(root), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(config.ConfigPath(root), []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	bank := ""
	for i := 0; i < bankSize; i++ {
		bank += fmt.Sprintf("- id: q%d\n  question: \"Question %d\"\n  options: [A, B, C]\n  correct_answer: B\n", i, i)
	}
	if err := os.WriteFile(filepath.Join(root, "questions.yml"), []byte(bank), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	return root
}

const validConfig = `version: 1
quiz:
  questions_file: "questions.yml"
  sets: 3
  time_limit_minutes: 20
  pass_threshold_percent: 70
`
