package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/question"
)

// Sentinel errors for session operations that violate the state machine.
var (
	// ErrSubmitted indicates a mutation that is frozen after submission.
	ErrSubmitted = errors.New("attempt already submitted")
	// ErrNotSubmitted indicates an operation that requires a submitted attempt.
	ErrNotSubmitted = errors.New("attempt not submitted yet")
	// ErrSetLocked indicates a set switch after submission.
	ErrSetLocked = errors.New("set selection is locked after submission")
	// ErrIndexOutOfRange indicates a question or set index outside the
	// active range.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownOption indicates a recorded choice that is not among the
	// question's options.
	ErrUnknownOption = errors.New("choice is not one of the question's options")
)

// Session is the mutable record of one quiz attempt. All state lives here
// and is mutated only through its methods; the rendering layer re-derives
// its view from the session on every cycle and never owns answer state.
type Session struct {
	attemptID     string
	sets          []question.Bank
	selected      int
	answers       map[int]string
	submitted     bool
	reviewMode    bool
	startTime     time.Time
	limit         time.Duration
	passThreshold float64
}

// NewSession starts a fresh attempt over the given partition. The sets
// are fixed for the lifetime of the session; reconfiguring means building
// a new session from a new partition.
func NewSession(sets []question.Bank, limit time.Duration, passThreshold float64, now time.Time) (*Session, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("session requires at least one question set")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("time limit must be positive, got %s", limit)
	}
	if passThreshold < 0 || passThreshold > 100 {
		return nil, fmt.Errorf("pass threshold must be within [0, 100], got %v", passThreshold)
	}
	return &Session{
		attemptID:     uuid.NewString(),
		sets:          sets,
		answers:       map[int]string{},
		startTime:     now,
		limit:         limit,
		passThreshold: passThreshold,
	}, nil
}

// AttemptID returns the unique id of the current attempt.
func (s *Session) AttemptID() string { return s.attemptID }

// SetCount returns the number of question sets in the partition.
func (s *Session) SetCount() int { return len(s.sets) }

// SelectedSet returns the index of the active set.
func (s *Session) SelectedSet() int { return s.selected }

// ActiveSet returns the questions of the currently selected set.
func (s *Session) ActiveSet() question.Bank { return s.sets[s.selected] }

// Submitted reports whether the attempt has been submitted.
func (s *Session) Submitted() bool { return s.submitted }

// ReviewMode reports whether per-option correctness should be revealed.
func (s *Session) ReviewMode() bool { return s.reviewMode }

// StartTime returns when the current attempt began.
func (s *Session) StartTime() time.Time { return s.startTime }

// TimeLimit returns the configured attempt duration.
func (s *Session) TimeLimit() time.Duration { return s.limit }

// PassThreshold returns the configured pass percentage.
func (s *Session) PassThreshold() float64 { return s.passThreshold }

// SelectSet switches the active set. Switching is forbidden once the
// attempt is submitted so the score always refers to the answered set.
func (s *Session) SelectSet(index int) error {
	if s.submitted {
		return ErrSetLocked
	}
	if index < 0 || index >= len(s.sets) {
		return fmt.Errorf("select set %d of %d: %w", index, len(s.sets), ErrIndexOutOfRange)
	}
	s.selected = index
	return nil
}

// Record stores the chosen option for a question in the active set,
// overwriting any earlier choice. Recording is rejected after submission
// and when the choice is not one of the question's options.
func (s *Session) Record(index int, choice string) error {
	if s.submitted {
		return ErrSubmitted
	}
	set := s.ActiveSet()
	if index < 0 || index >= len(set) {
		return fmt.Errorf("record answer for question %d of %d: %w", index, len(set), ErrIndexOutOfRange)
	}
	valid := false
	for _, option := range set[index].Options {
		if option == choice {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("record %q for question %d: %w", choice, index, ErrUnknownOption)
	}
	s.answers[index] = choice
	return nil
}

// Answer returns the recorded choice for a question, if any. Absence
// means unanswered, not answered incorrectly.
func (s *Session) Answer(index int) (string, bool) {
	answer, ok := s.answers[index]
	return answer, ok
}

// AnsweredCount returns how many questions have a recorded choice.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Submit freezes the attempt. It is idempotent, and the first submission
// turns review mode on by default.
func (s *Session) Submit() {
	if s.submitted {
		return
	}
	s.submitted = true
	s.reviewMode = true
}

// Remaining reports the time left in the attempt at the given instant.
func (s *Session) Remaining(now time.Time) time.Duration {
	return Remaining(s.startTime, s.limit, now)
}

// ExpireIfDue auto-submits the attempt when the time limit has passed.
// It reports whether this call performed the transition; once submitted,
// further checks have no effect.
func (s *Session) ExpireIfDue(now time.Time) bool {
	if s.submitted {
		return false
	}
	if !Expired(s.startTime, s.limit, now) {
		return false
	}
	s.Submit()
	return true
}

// ToggleReview flips review mode. Only a submitted attempt can be
// reviewed, so the toggle is a no-op while the attempt is active.
func (s *Session) ToggleReview() {
	if !s.submitted {
		return
	}
	s.reviewMode = !s.reviewMode
}

// TagFor classifies one option of a question in the active set for
// review display.
func (s *Session) TagFor(index int, option string) Tag {
	answer, answered := s.answers[index]
	return TagFor(option, s.ActiveSet()[index].CorrectAnswer, answer, answered)
}

// Score grades the recorded answers against the active set. Scoring an
// attempt that has not been submitted is an error.
func (s *Session) Score() (Result, error) {
	if !s.submitted {
		return Result{}, ErrNotSubmitted
	}
	return Score(s.ActiveSet(), s.answers, s.passThreshold)
}

// Reset starts a new attempt over the same partition: answers, the
// submission flag, review mode, and the set selection are cleared, the
// clock restarts, and a new attempt id is issued. A changed configuration
// instead requires a new partition and a new session.
func (s *Session) Reset(now time.Time) {
	s.attemptID = uuid.NewString()
	s.answers = map[int]string{}
	s.submitted = false
	s.reviewMode = false
	s.selected = 0
	s.startTime = now
}
