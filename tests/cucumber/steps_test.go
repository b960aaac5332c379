package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"quizdeck/internal/cli"
	"quizdeck/internal/config"
)

type featureState struct {
	projectDir string
	configPath string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with a valid quizdeck configuration$`, state.aProjectWithValidConfig)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^the question bank has a correct answer that is not an option$`, state.theBankHasImpossibleAnswer)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
	ctx.Step(`^the error message mentions "([^"]+)"$`, state.theErrorMessageMentions)
}

func (s *featureState) reset() {
	s.projectDir = ""
	s.configPath = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

func (s *featureState) cleanup() {
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
}

func (s *featureState) aProjectWithValidConfig() error {
	dir, err := os.MkdirTemp("", "quizdeck-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	s.configPath = config.ConfigPath(dir)
	if err := os.MkdirAll(config.ConfigDir(dir), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	configBody := `version: 1
quiz:
  questions_file: "questions.yml"
  sets: 2
  time_limit_minutes: 10
  pass_threshold_percent: 60
`
	if err := os.WriteFile(s.configPath, []byte(configBody), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return s.writeBank(`- question: "Which color?"
  options: [red, blue]
  correct_answer: blue
- question: "Which number?"
  options: ["1", "2"]
  correct_answer: "2"
`)
}

func (s *featureState) theConfigIsInvalid() error {
	return os.WriteFile(s.configPath, []byte("version: 7\nquiz:\n  questions_file: \"questions.yml\"\n"), 0o644)
}

func (s *featureState) theBankHasImpossibleAnswer() error {
	return s.writeBank(`- question: "Which color?"
  options: [red, blue]
  correct_answer: green
`)
}

func (s *featureState) writeBank(body string) error {
	if s.projectDir == "" {
		return fmt.Errorf("no project directory")
	}
	path := filepath.Join(s.projectDir, "questions.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 || fields[0] != "quizdeck" {
		return fmt.Errorf("unsupported command %q", command)
	}
	args := fields[1:]
	if s.configPath != "" && len(args) > 0 {
		switch args[0] {
		case "validate", "run", "init":
			args = append(args, "--config", s.configPath)
		}
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected %q in output, got %q", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	if !strings.Contains(s.stderr.String(), "version") {
		return fmt.Errorf("expected error to mention version, got %q", s.stderr.String())
	}
	return nil
}

func (s *featureState) theErrorMessageMentions(expected string) error {
	if !strings.Contains(s.stderr.String(), expected) {
		return fmt.Errorf("expected %q in error output, got %q", expected, s.stderr.String())
	}
	return nil
}
