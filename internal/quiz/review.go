package quiz

// Tag classifies how a single option should be presented in review mode.
type Tag int

const (
	// TagNeutral marks an option that is neither correct nor the user's pick.
	TagNeutral Tag = iota
	// TagCorrect marks the correct option.
	TagCorrect
	// TagWrongChosen marks the user's pick when it is not the correct option.
	TagWrongChosen
)

// String returns a display label for a tag.
func (tag Tag) String() string {
	switch tag {
	case TagCorrect:
		return "correct"
	case TagWrongChosen:
		return "wrong"
	default:
		return "neutral"
	}
}

// TagFor decides the review tag for one option. The correct option is
// always tagged correct, even when the question was left unanswered or
// the user picked it (no double tag). Only a wrong pick is tagged as the
// user's choice.
func TagFor(option, correctAnswer, userAnswer string, answered bool) Tag {
	if option == correctAnswer {
		return TagCorrect
	}
	if answered && option == userAnswer {
		return TagWrongChosen
	}
	return TagNeutral
}
