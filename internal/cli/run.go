package cli

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"quizdeck/internal/config"
	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/ui/play"
)

// startSession launches the interactive UI; tests stub this out.
var startSession = func(session *quiz.Session, stdout io.Writer) error {
	return play.Run(session, stdout, play.Options{})
}

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quizdeck/config.yml)")
		setIndex := flags.Int("set", 1, "Question set to start on (1-based)")
		seed := flags.Uint64("seed", 0, "Shuffle seed (0 means random)")
		uiMode := flags.String("ui", "auto", "UI mode: auto|tui")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if err := resolveUIMode(*uiMode, stdout); err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		session, err := buildSession(*configPath, *setIndex, *seed)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		if err := startSession(session, stdout); err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// buildSession loads the config and question bank, partitions the bank,
// and starts a session on the requested set. A changed configuration
// therefore always yields a fresh partition and a fresh session.
func buildSession(configPath string, setIndex int, seed uint64) (*quiz.Session, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return nil, err
	}
	bank, err := question.Load(config.QuestionsPath(resolved, cfg.Quiz.QuestionsFile))
	if err != nil {
		return nil, err
	}

	rng := newRNG(seed)
	sets := quiz.Partition(bank, cfg.Quiz.Sets, rng)
	session, err := quiz.NewSession(
		sets,
		time.Duration(cfg.Quiz.TimeLimitMinutes)*time.Minute,
		*cfg.Quiz.PassThresholdPercent,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}
	if setIndex != 1 {
		if err := session.SelectSet(setIndex - 1); err != nil {
			return nil, fmt.Errorf("start on set %d: %w", setIndex, err)
		}
	}
	return session, nil
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
