package config

import "quizdeck/internal/spec"

// Defaults applied to omitted quiz options.
const (
	DefaultSets             = 3
	DefaultTimeLimitMinutes = 20
	DefaultPassThreshold    = 70.0
)

// Normalize fills in defaults for omitted quiz options. The pass
// threshold uses a pointer so an explicit 0 survives normalization.
func Normalize(cfg *spec.Config) {
	if cfg.Quiz.QuestionsFile == "" {
		cfg.Quiz.QuestionsFile = DefaultQuestionsFile
	}
	if cfg.Quiz.Sets == 0 {
		cfg.Quiz.Sets = DefaultSets
	}
	if cfg.Quiz.TimeLimitMinutes == 0 {
		cfg.Quiz.TimeLimitMinutes = DefaultTimeLimitMinutes
	}
	if cfg.Quiz.PassThresholdPercent == nil {
		threshold := DefaultPassThreshold
		cfg.Quiz.PassThresholdPercent = &threshold
	}
}
