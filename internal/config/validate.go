package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizdeck/internal/spec"
)

// Issue captures a validation problem in a config.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks a config for correctness and the referenced question
// file. The requested set count is only clamped to the bank size later,
// at partition time, since the bank is not loaded here.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	questionsFile := strings.TrimSpace(cfg.Quiz.QuestionsFile)
	if questionsFile == "" {
		collector.add("quiz.questions_file", "is required")
	} else {
		path := questionsFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if info, err := os.Stat(path); err != nil {
			collector.add("quiz.questions_file", fmt.Sprintf("file %q not found", questionsFile))
		} else if info.IsDir() {
			collector.add("quiz.questions_file", fmt.Sprintf("%q is a directory", questionsFile))
		}
	}

	if cfg.Quiz.Sets < 1 {
		collector.add("quiz.sets", "must be at least 1")
	}
	if cfg.Quiz.TimeLimitMinutes < 1 {
		collector.add("quiz.time_limit_minutes", "must be a positive number of minutes")
	}
	if cfg.Quiz.PassThresholdPercent != nil {
		threshold := *cfg.Quiz.PassThresholdPercent
		if threshold < 0 || threshold > 100 {
			collector.add("quiz.pass_threshold_percent", fmt.Sprintf("must be within [0, 100], got %v", threshold))
		}
	}

	return collector.result()
}
