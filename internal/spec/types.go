package spec

// Config is the on-disk configuration schema (.quizdeck/config.yml).
type Config struct {
	Version int        `yaml:"version"`
	Quiz    QuizConfig `yaml:"quiz"`
}

// QuizConfig holds the quiz session options.
type QuizConfig struct {
	QuestionsFile        string   `yaml:"questions_file"`
	Sets                 int      `yaml:"sets"`
	TimeLimitMinutes     int      `yaml:"time_limit_minutes"`
	PassThresholdPercent *float64 `yaml:"pass_threshold_percent"`
}
