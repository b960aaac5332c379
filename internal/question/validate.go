package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
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
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
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

// Normalize trims whitespace and validates a question bank. A question
// must carry at least two distinct options, and its correct answer must
// match one of them exactly.
func Normalize(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if len(bank) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, q := range bank {
		prefix := fmt.Sprintf("questions[%d]", i)
		q.ID = strings.TrimSpace(q.ID)
		if q.ID != "" {
			if _, exists := seenIDs[q.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
			} else {
				seenIDs[q.ID] = struct{}{}
			}
		}

		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			collector.add(prefix+".question", "is required")
		}

		q.Options = trimStrings(q.Options)
		if len(q.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		optionSet := map[string]struct{}{}
		for optionIndex, option := range q.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
				continue
			}
			if _, exists := optionSet[option]; exists {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), fmt.Sprintf("duplicate option %q", option))
				continue
			}
			optionSet[option] = struct{}{}
		}

		q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
		if q.CorrectAnswer == "" {
			collector.add(prefix+".correct_answer", "is required")
		} else if _, ok := optionSet[q.CorrectAnswer]; !ok {
			collector.add(prefix+".correct_answer", fmt.Sprintf("unknown option %q", q.CorrectAnswer))
		}

		bank[i] = q
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return bank, nil
}

func trimStrings(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
