package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/slider"
)

// keyMap defines all keyboard bindings for the carousel.
type keyMap struct {
	// Slider
	Next      key.Binding
	Previous  key.Binding
	PlayPause key.Binding
	Random    key.Binding
	First     key.Binding
	Last      key.Binding
	Jump      key.Binding

	// View
	ToggleThumbnails key.Binding
	CycleTheme       key.Binding
	Help             key.Binding
	Quit             key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next slide"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous slide"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play/pause"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Random slide"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to slide"),
		),

		ToggleThumbnails: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle thumbnails"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.PlayPause, k.Random, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.PlayPause, k.Random},
		{k.First, k.Last, k.Jump},
		{k.ToggleThumbnails, k.CycleTheme, k.Help, k.Quit},
	}
}

// keyCode translates the slider bindings into the key codes the router
// understands. Other keys return "".
func (k keyMap) keyCode(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.Next):
		return slider.KeyArrowRight
	case key.Matches(msg, k.Previous):
		return slider.KeyArrowLeft
	case key.Matches(msg, k.PlayPause):
		return slider.KeySpace
	default:
		return ""
	}
}
