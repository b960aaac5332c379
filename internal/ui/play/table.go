package play

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/quiz"
)

// resultColumns defines the post-submission results table layout.
func resultColumns() []table.Column {
	return []table.Column{
		{Title: "Q", Width: 5},
		{Title: "Your answer", Width: 28},
		{Title: "Outcome", Width: 10},
	}
}

// tableStyles returns table styles for the results view.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForSession converts a submitted session into result rows.
func rowsForSession(session *quiz.Session) []table.Row {
	set := session.ActiveSet()
	rows := make([]table.Row, 0, len(set))
	for i, q := range set {
		answer, answered := session.Answer(i)
		display := answer
		outcome := "incorrect"
		if !answered {
			display = "-"
			outcome = "blank"
		} else if answer == q.CorrectAnswer {
			outcome = "correct"
		}
		rows = append(rows, table.Row{formatIndex(i), display, outcome})
	}
	return rows
}
