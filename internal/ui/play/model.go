package play

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/quiz"
)

// Model renders one quiz session as a Bubble Tea program. All answer
// state lives in the session; the model only keeps cursor positions and
// re-derives the view from the session on every cycle.
type Model struct {
	session      *quiz.Session
	keys         keyMap
	results      table.Model
	cursor       int
	optCursor    int
	tickInterval time.Duration
	now          time.Time
	noColor      bool
	width        int
	status       string
}

// Options configures the quiz UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
	Now          time.Time
}

// NewModel constructs a quiz UI model over a session.
func NewModel(session *quiz.Session, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 200 * time.Millisecond
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	results := table.New(
		table.WithColumns(resultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	results.SetStyles(tableStyles(opts.NoColor))
	model := Model{
		session:      session,
		keys:         defaultKeyMap(),
		results:      results,
		tickInterval: tickInterval,
		now:          now,
		noColor:      opts.NoColor,
	}
	model.optCursor = model.recordedOption()
	return model
}

// Run starts the interactive session and blocks until the user quits.
func Run(session *quiz.Session, stdout io.Writer, opts Options) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	program := tea.NewProgram(NewModel(session, opts), tea.WithOutput(stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// tickMsg carries a clock tick for countdown updates.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the countdown ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// Update reacts to key presses and timer ticks. Timeout is cooperative:
// expiry is observed on the next tick, not exactly at the deadline.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.results.SetWidth(typed.Width)
		return m, nil
	case tickMsg:
		m.now = time.Time(typed)
		if m.session.ExpireIfDue(m.now) {
			m.status = "Time is up. The attempt was submitted automatically."
			m.refreshResults()
		}
		return m, tick(m.tickInterval)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevQuestion):
		m.moveQuestion(-1)
	case key.Matches(msg, m.keys.NextQuestion):
		m.moveQuestion(1)
	case key.Matches(msg, m.keys.PrevOption):
		m.moveOption(-1)
	case key.Matches(msg, m.keys.NextOption):
		m.moveOption(1)
	case key.Matches(msg, m.keys.Choose):
		m.choose()
	case key.Matches(msg, m.keys.PrevSet):
		m.switchSet(-1)
	case key.Matches(msg, m.keys.NextSet):
		m.switchSet(1)
	case key.Matches(msg, m.keys.Submit):
		m.submit()
	case key.Matches(msg, m.keys.Review):
		m.session.ToggleReview()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	}
	return m, nil
}

// moveQuestion moves the question cursor and re-seats the option cursor
// on the recorded answer, if any.
func (m *Model) moveQuestion(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.session.ActiveSet()) {
		return
	}
	m.cursor = next
	m.optCursor = m.recordedOption()
}

func (m *Model) moveOption(delta int) {
	if m.session.Submitted() {
		return
	}
	options := m.session.ActiveSet()[m.cursor].Options
	next := m.optCursor + delta
	if next < 0 || next >= len(options) {
		return
	}
	m.optCursor = next
}

// choose records the highlighted option. Recording after submission is
// rejected by the session; the keypress is dropped silently.
func (m *Model) choose() {
	options := m.session.ActiveSet()[m.cursor].Options
	if m.optCursor < 0 || m.optCursor >= len(options) {
		return
	}
	if err := m.session.Record(m.cursor, options[m.optCursor]); err != nil {
		if !errors.Is(err, quiz.ErrSubmitted) {
			m.status = err.Error()
		}
		return
	}
	m.status = ""
}

// switchSet changes the active set; the session rejects this once the
// attempt is submitted.
func (m *Model) switchSet(delta int) {
	if err := m.session.SelectSet(m.session.SelectedSet() + delta); err != nil {
		if errors.Is(err, quiz.ErrSetLocked) {
			m.status = "Set selection is locked after submission."
		}
		return
	}
	m.cursor = 0
	m.optCursor = m.recordedOption()
	m.status = ""
}

func (m *Model) submit() {
	if m.session.Submitted() {
		return
	}
	m.session.Submit()
	m.refreshResults()
	m.status = ""
}

func (m *Model) restart() {
	m.session.Reset(m.now)
	m.cursor = 0
	m.optCursor = 0
	m.results.SetRows([]table.Row{})
	m.status = ""
}

// recordedOption returns the option index of the recorded answer for
// the question under the cursor, or 0 when unanswered.
func (m *Model) recordedOption() int {
	answer, ok := m.session.Answer(m.cursor)
	if !ok {
		return 0
	}
	for i, option := range m.session.ActiveSet()[m.cursor].Options {
		if option == answer {
			return i
		}
	}
	return 0
}

func (m *Model) refreshResults() {
	m.results.SetRows(rowsForSession(m.session))
}
