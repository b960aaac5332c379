package question

// Question is a single multiple-choice question with one correct option.
type Question struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	Text          string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
}

// Bank is the full ordered collection of questions before partitioning.
type Bank []Question
