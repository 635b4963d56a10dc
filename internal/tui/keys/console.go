package keys

import "github.com/charmbracelet/bubbles/key"

// Console key bindings for the channel fader view
type ConsoleKeys struct {
	CommonKeys
	PrevChannel key.Binding
	NextChannel key.Binding
	Raise       key.Binding
	Lower       key.Binding
	RaiseCoarse key.Binding
	LowerCoarse key.Binding
	Full        key.Binding
	Blackout    key.Binding
	Select      key.Binding
}

func NewConsoleKeys() ConsoleKeys {
	return ConsoleKeys{
		CommonKeys: NewCommonKeys(),
		PrevChannel: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev channel"),
		),
		NextChannel: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next channel"),
		),
		Raise: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "raise level"),
		),
		Lower: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "lower level"),
		),
		RaiseCoarse: key.NewBinding(
			key.WithKeys("K", "pgup"),
			key.WithHelp("K/pgup", "raise +16"),
		),
		LowerCoarse: key.NewBinding(
			key.WithKeys("J", "pgdown"),
			key.WithHelp("J/pgdn", "lower -16"),
		),
		Full: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "channel to full"),
		),
		Blackout: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blackout"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select port"),
		),
	}
}

func (k ConsoleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevChannel, k.NextChannel, k.Raise, k.Lower, k.Blackout, k.Help, k.Quit}
}

func (k ConsoleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevChannel, k.NextChannel, k.Raise, k.Lower},
		{k.RaiseCoarse, k.LowerCoarse, k.Full, k.Blackout},
		{k.Help, k.Quit},
	}
}
