package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/registry"
)

const (
	boardEntries  = 50 // the flat score file keeps at most this many too
	boardChrome   = 9  // rows taken by title, tabs, borders, summary and help
	pilotColWidth = 20
	fixedColWidth = 6 + 10 + 14 + 8 // rank, score, date, cell padding
)

type scoreboardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Mine   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Mine, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	Mode:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab/←/→", "mode")),
	Mine:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my best")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel lists the ranked scores of one mode at a time. The
// current pilot's entries are marked.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	mode     int
	pilot    string
	services Services
	records  []core.ScoreRecord
	table    table.Model
	help     help.Model
	width    int
	height   int
	back     bool
	quit     bool
}

// NewScoreboardModel opens the board on gameID, or on the first mode when
// gameID is empty or unknown.
func NewScoreboardModel(services Services, gameID, pilot string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:    registry.List(),
		pilot:    pilot,
		services: services,
		help:     help.New(),
		width:    width,
		height:   height,
	}
	for i, g := range m.modes {
		if g.ID == gameID {
			m.mode = i
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	pilotW := pilotColWidth
	if room := m.width - fixedColWidth - 6; room < pilotW {
		pilotW = max(room, 8)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Pilot", Width: pilotW},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
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
	return t
}

// GameID returns the mode on display.
func (m ScoreboardModel) GameID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload fetches the current mode's scores into the table.
func (m *ScoreboardModel) reload() {
	if len(m.modes) == 0 {
		m.records = nil
	} else {
		m.records = m.services.Book(m.GameID()).TopScores(boardEntries)
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rank := fmt.Sprintf("%d", i+1)
		if m.pilot != "" && r.Name == m.pilot {
			rank = "*" + rank
		}
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{rank, r.Name, fmt.Sprintf("%d", r.Score), date}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// pilotBest returns the rank index of the pilot's best entry, or -1.
func (m ScoreboardModel) pilotBest() int {
	if m.pilot == "" {
		return -1
	}
	for i, r := range m.records {
		if r.Name == m.pilot {
			return i
		}
	}
	return -1
}

// shiftMode moves the board by delta modes, wrapping around.
func (m *ScoreboardModel) shiftMode(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = ((m.mode+delta)%n + n) % n
		m.reload()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Mode):
			if s := msg.String(); s == "shift+tab" || s == "left" {
				m.shiftMode(-1)
			} else {
				m.shiftMode(1)
			}
			return m, nil
		case key.Matches(msg, boardKeys.Mine):
			if i := m.pilotBest(); i >= 0 {
				m.table.SetCursor(i)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")

	body := boardDimStyle.Italic(true).Padding(1, 4).Render("No scores recorded yet.\nHold the line to set one!")
	if len(m.records) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")

	b.WriteString(centerText(boardDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(boardKeys), m.width))
	return b.String()
}

// summary is the line under the table.
func (m ScoreboardModel) summary() string {
	if len(m.records) == 0 {
		return ""
	}
	line := fmt.Sprintf("%d entries, best %d by %s", len(m.records), m.records[0].Score, m.records[0].Name)
	if i := m.pilotBest(); i >= 0 {
		line += fmt.Sprintf("  |  %s: #%d with %d", m.pilot, i+1, m.records[i].Score)
	}
	return line
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard runs the board on its own. It reports whether the player
// asked to return to the menu.
func RunScoreboard(services Services, gameID, pilot string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(services, gameID, pilot, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
