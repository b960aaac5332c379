package quiz

import (
	"errors"
	"math"

	"quizdeck/internal/question"
)

// ErrEmptySet indicates an attempt to score a set with no questions.
var ErrEmptySet = errors.New("cannot score an empty question set")

// Result is the outcome of scoring one attempt against one set.
type Result struct {
	Correct int
	Total   int
	Percent float64
	Passed  bool
}

// Score counts recorded answers that match the correct option and grades
// them against the pass threshold. An absent entry in answers counts as
// incorrect. Percent is rounded half-up to two decimal places.
func Score(set question.Bank, answers map[int]string, passThreshold float64) (Result, error) {
	if len(set) == 0 {
		return Result{}, ErrEmptySet
	}
	correct := 0
	for i, q := range set {
		if answer, ok := answers[i]; ok && answer == q.CorrectAnswer {
			correct++
		}
	}
	percent := roundPercent(float64(correct) / float64(len(set)) * 100)
	return Result{
		Correct: correct,
		Total:   len(set),
		Percent: percent,
		Passed:  percent >= passThreshold,
	}, nil
}

func roundPercent(value float64) float64 {
	return math.Round(value*100) / 100
}
