package play

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/quiz"
)

// View renders the whole screen from the current session state.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderSetLine(),
		m.renderTimer(),
		"",
		m.renderQuestions(),
	}
	if m.session.Submitted() {
		sections = append(sections, m.renderResults())
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with the attempt id.
func (m Model) renderHeader() string {
	line := "quizdeck | attempt " + shortID(m.session.AttemptID())
	return m.stylize(line, lipgloss.Color("33"))
}

// renderSetLine renders the set picker state.
func (m Model) renderSetLine() string {
	line := "Set " + fmtInt(m.session.SelectedSet()+1) + "/" + fmtInt(m.session.SetCount())
	if m.session.Submitted() {
		line += " (locked)"
	} else if m.session.SetCount() > 1 {
		line += "  ([ and ] to switch)"
	}
	return m.stylize(line, lipgloss.Color("240"))
}

// renderTimer renders the countdown while the attempt is active.
func (m Model) renderTimer() string {
	if m.session.Submitted() {
		return ""
	}
	remaining := m.session.Remaining(m.now)
	if remaining == 0 {
		return m.stylize("Time is up.", lipgloss.Color("196"))
	}
	line := "Time left " + formatCountdown(remaining) +
		" | pass mark " + formatPercent(m.session.PassThreshold())
	return m.stylize(line, lipgloss.Color("242"))
}

// renderQuestions renders the active set with the cursor and, once
// submitted, the review of each option.
func (m Model) renderQuestions() string {
	blocks := make([]string, 0, len(m.session.ActiveSet()))
	for i, q := range m.session.ActiveSet() {
		lines := []string{m.renderQuestionTitle(i, q.Text)}
		switch {
		case !m.session.Submitted():
			lines = append(lines, m.renderChoices(i, q.Options)...)
		case m.session.ReviewMode():
			lines = append(lines, m.renderReview(i, q.Options)...)
		default:
			lines = append(lines, m.renderPlainAnswer(i))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderQuestionTitle(index int, text string) string {
	marker := "  "
	if index == m.cursor {
		marker = "> "
	}
	title := marker + formatIndex(index) + ". " + text
	if index == m.cursor {
		return m.stylize(title, lipgloss.Color("252"))
	}
	return title
}

// renderChoices renders selectable options with radio markers.
func (m Model) renderChoices(index int, options []string) []string {
	answer, answered := m.session.Answer(index)
	lines := make([]string, 0, len(options))
	for i, option := range options {
		radio := "( )"
		if answered && option == answer {
			radio = "(x)"
		}
		highlight := "  "
		if index == m.cursor && i == m.optCursor {
			highlight = "> "
		}
		line := "    " + highlight + radio + " " + option
		if index == m.cursor && i == m.optCursor {
			line = m.stylize(line, lipgloss.Color("39"))
		}
		lines = append(lines, line)
	}
	return lines
}

// renderReview renders every option with its correctness tag.
func (m Model) renderReview(index int, options []string) []string {
	lines := make([]string, 0, len(options))
	for _, option := range options {
		tag := m.session.TagFor(index, option)
		lines = append(lines, "      "+m.stylizeTag(tagGlyph(tag)+" "+option, tag))
	}
	return lines
}

// renderPlainAnswer reports the recorded answer without revealing
// correctness, for submitted attempts with review mode off.
func (m Model) renderPlainAnswer(index int) string {
	if answer, ok := m.session.Answer(index); ok {
		return "      Your answer: " + answer
	}
	return "      You left this blank."
}

// renderResults renders the metrics, the pass banner, and the
// per-question results table.
func (m Model) renderResults() string {
	result, err := m.session.Score()
	if err != nil {
		return m.stylize("Scoring failed: "+err.Error(), lipgloss.Color("196"))
	}
	metrics := "Correct " + fmtInt(result.Correct) + "/" + fmtInt(result.Total) +
		" | " + formatPercent(result.Percent)
	banner := "FAILED (needed " + formatPercent(m.session.PassThreshold()) + ")"
	bannerColor := lipgloss.Color("196")
	if result.Passed {
		banner = "PASSED (pass mark " + formatPercent(m.session.PassThreshold()) + ")"
		bannerColor = lipgloss.Color("42")
	}
	review := "Review mode off (v to reveal correctness)"
	if m.session.ReviewMode() {
		review = "Review mode on (v to hide correctness)"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		m.stylize(metrics, lipgloss.Color("252")),
		m.stylize(banner, bannerColor),
		m.stylize(review, lipgloss.Color("242")),
		m.results.View(),
	)
}

// renderFooter renders the status line and the key help.
func (m Model) renderFooter() string {
	help := "↑/↓ question  ←/→ option  enter choose  s submit  q quit"
	if m.session.Submitted() {
		help = "v review  n new attempt  q quit"
	}
	lines := []string{"", m.stylize(help, lipgloss.Color("240"))}
	if m.status != "" {
		lines = append(lines, m.stylize(m.status, lipgloss.Color("220")))
	}
	return strings.Join(lines, "\n")
}

// tagGlyph maps a review tag to its marker.
func tagGlyph(tag quiz.Tag) string {
	switch tag {
	case quiz.TagCorrect:
		return "[ok]"
	case quiz.TagWrongChosen:
		return "[xx]"
	default:
		return "[  ]"
	}
}

// stylize applies optional color styling.
func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeTag colors review lines by tag.
func (m Model) stylizeTag(text string, tag quiz.Tag) string {
	color := lipgloss.Color("246")
	switch tag {
	case quiz.TagCorrect:
		color = lipgloss.Color("42")
	case quiz.TagWrongChosen:
		color = lipgloss.Color("196")
	}
	return m.stylize(text, color)
}
