package play

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the quiz session keybindings.
type keyMap struct {
	PrevQuestion key.Binding
	NextQuestion key.Binding
	PrevOption   key.Binding
	NextOption   key.Binding
	Choose       key.Binding
	PrevSet      key.Binding
	NextSet      key.Binding
	Submit       key.Binding
	Review       key.Binding
	Restart      key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevQuestion: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous question"),
		),
		NextQuestion: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next question"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose option"),
		),
		PrevSet: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous set"),
		),
		NextSet: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next set"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
		Review: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle review"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new attempt"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
