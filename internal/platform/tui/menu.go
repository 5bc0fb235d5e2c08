package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).MarginBottom(1)
	menuFrameStyle = lipgloss.NewStyle().Padding(1, 2)
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	games    []registry.GameInfo
	table    table.Model
	keys     MenuKeyMap
	help     help.Model
	config   core.RuntimeConfig
	selected string
	quitting bool
}

// NewMenuModel creates a picker over every registered game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()

	rows := make([]table.Row, len(games))
	for i, g := range games {
		rows[i] = table.Row{g.Title, g.ID, g.Summary}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Game", Width: 20},
			{Title: "ID", Width: 16},
			{Title: "Layout", Width: 24},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+3), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MenuModel{
		games:  games,
		table:  t,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.games) > 0 {
				m.selected = m.games[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("B R E A K O U T"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return menuFrameStyle.Render(b.String())
}

// Selected returns the chosen game ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the picker and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{GameID: m.Selected(), Config: m.config}, nil
}
