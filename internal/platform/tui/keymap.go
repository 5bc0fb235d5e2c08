package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameKeyMap defines key bindings for the play screen.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the compact footer.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded footer.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default play-screen bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame records the action bound to msg in frame.
// Returns true if the key was a quit request.
func (k GameKeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Left):
		frame.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		frame.Set(core.ActionRight)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	}
	return false
}

// MenuKeyMap defines key bindings for the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the compact footer.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns bindings for the expanded footer.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
