package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
quiz:
  questions_file: "%s"
  sets: 3
  time_limit_minutes: 20
  pass_threshold_percent: 70
`

const sampleQuestions = `# Sample question bank. Replace with your own questions.
# A .json file with the same shape is also accepted.
- id: q1
  question: "Which keyword declares a new variable with inferred type in Go?"
  options: ["var", ":=", "let", "new"]
  correct_answer: ":="
- id: q2
  question: "What does len(\"go\") return?"
  options: ["1", "2", "3"]
  correct_answer: "2"
- id: q3
  question: "Which builtin appends to a slice?"
  options: ["push", "add", "append"]
  correct_answer: "append"
`

// Scaffold writes a default config and, when missing, a sample question
// bank next to the project root. It refuses to overwrite an existing
// config.
func Scaffold(configPath, questionsFile string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if questionsFile == "" {
		questionsFile = DefaultQuestionsFile
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	payload := fmt.Sprintf(defaultConfig, questionsFile)
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	questionsPath := QuestionsPath(configPath, questionsFile)
	if _, err := os.Stat(questionsPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat question bank: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(questionsPath), 0o755); err != nil {
		return fmt.Errorf("create question bank directory: %w", err)
	}
	if err := os.WriteFile(questionsPath, []byte(sampleQuestions), 0o644); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	return nil
}
