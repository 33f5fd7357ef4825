package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Fold    key.Binding
	Call    key.Binding
	Raise   key.Binding
	Left    key.Binding
	Right   key.Binding
	Pick    key.Binding
	Confirm key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Fold: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fold"),
		),
		Call: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "call"),
		),
		Raise: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "raise"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick size"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fold, k.Call, k.Raise, k.Left, k.Right, k.Pick, k.Confirm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fold, k.Call, k.Raise},
		{k.Left, k.Right, k.Pick, k.Confirm},
		{k.Restart, k.Help, k.Quit},
	}
}

// forScreen enables only the bindings that do something on s.
func (k *keyMap) forScreen(s screen, freeCheck bool) {
	acting := s == screenAction
	sizing := s == screenSizing

	k.Fold.SetEnabled(acting && !freeCheck)
	k.Call.SetEnabled(acting)
	k.Raise.SetEnabled(acting)
	k.Left.SetEnabled(sizing)
	k.Right.SetEnabled(sizing)
	k.Pick.SetEnabled(sizing)
	k.Confirm.SetEnabled(s != screenAction)
	k.Restart.SetEnabled(s != screenIntro)

	if freeCheck {
		k.Call.SetHelp("c", "check")
	} else {
		k.Call.SetHelp("c", "call")
	}
	switch s {
	case screenSizing:
		k.Confirm.SetHelp("enter", "raise")
	case screenIntro:
		k.Confirm.SetHelp("enter", "start")
	default:
		k.Confirm.SetHelp("enter", "next hand")
	}
}
