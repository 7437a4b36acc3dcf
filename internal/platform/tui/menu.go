package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/games/defender"
	"github.com/vovakirdan/defender/internal/registry"
)

// menuTopScores is the length of the score list beside the mode picker.
const menuTopScores = 10

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the title screen: pilot name entry, mode picker and the top
// scores of the highlighted mode.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	services       Services
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	name           textinput.Model
	notice         string
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with name pre-filled.
func NewMenuModel(services Services, cfg core.RuntimeConfig, name string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	ti := textinput.New()
	ti.Placeholder = "pilot name"
	ti.Prompt = "Pilot: "
	ti.CharLimit = defender.MaxNameLength
	ti.Width = defender.MaxNameLength
	ti.SetValue(defender.SanitizeName(name))
	ti.Focus()

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		services:  services,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		name:      ti,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case MenuActionSelect:
		if m.Name() == "" {
			m.notice = "Enter a pilot name (letters and digits) to start"
			return m, nil
		}
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
		return m, nil

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	// Everything else edits the name
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	if clean := defender.SanitizeName(m.name.Value()); clean != m.name.Value() {
		m.name.SetValue(clean)
	}
	m.notice = ""
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D E F E N D E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.name.View(), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Top pilots"), m.width))
	b.WriteString("\n")
	for _, line := range m.topScoreLines() {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Type name  |  Up/Down: Mode  |  Enter: Play  |  Tab: Scores  |  Esc: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) topScoreLines() []string {
	if len(m.items) == 0 {
		return nil
	}
	records := m.services.Book(m.items[m.cursor].GameID).TopScores(menuTopScores)
	if len(records) == 0 {
		return []string{"no scores yet"}
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%2d. %-20s %8d", i+1, r.Name, r.Score)
	}
	return lines
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Name returns the sanitized pilot name.
func (m MenuModel) Name() string {
	return defender.SanitizeName(m.name.Value())
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Name            string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(services Services, cfg core.RuntimeConfig, name string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(services, cfg, name),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Name: name}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Name: name, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Name:   m.Name(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}

	return result, nil
}
