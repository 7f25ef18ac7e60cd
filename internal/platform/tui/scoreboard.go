package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

const scoreboardRows = 50

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	statsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Padding(1, 2)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding

	up, down, next, prev key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Scroll, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Switch: key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "profile")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		up:   key.NewBinding(key.WithKeys("up", "k")),
		down: key.NewBinding(key.WithKeys("down", "j")),
		next: key.NewBinding(key.WithKeys("right", "l", "tab")),
		prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	}
}

// ScoreboardModel shows the best runs of one profile at a time.
type ScoreboardModel struct {
	store    *storage.Store
	profiles []registry.ProfileInfo
	current  int
	stats    *storage.GameStats
	runs     []storage.ScoreEntry
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	back     bool
	quitting bool
}

// NewScoreboardModel opens the scoreboard on the first profile.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		profiles: registry.List(),
		help:     help.New(),
		keys:     newScoreboardKeys(),
		width:    width,
		height:   height,
	}
	m.table = newRunsTable(height)
	m.load()
	return m
}

func newRunsTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 7},
			{Title: "Time", Width: 6},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load reads the current profile's runs and stats. Storage errors show
// as an empty board.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.profiles) > 0 {
		id := m.profiles[m.current].ID
		if runs, err := m.store.TopScores(id, scoreboardRows); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			player,
			strconv.Itoa(r.Score),
			formatDuration(r.DurationSecs),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchProfile(delta int) {
	if len(m.profiles) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.profiles)) % len(m.profiles)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Back never ends the program; the session
// checks IsGoingBack.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(3, msg.Height-10))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		case key.Matches(msg, m.keys.next):
			m.switchProfile(1)
			return m, nil
		case key.Matches(msg, m.keys.prev):
			m.switchProfile(-1)
			return m, nil
		case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	body := emptyStyle.Render("No runs recorded yet.")
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	for _, line := range strings.Split(boardStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuSubtleStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.profiles))
	for i, p := range m.profiles {
		if i == m.current {
			parts[i] = activeTabStyle.Render(p.Title)
		} else {
			parts[i] = tabStyle.Render(p.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no runs"
	}
	return fmt.Sprintf("%d runs  best %d  avg %.1f  last %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Local().Format("Jan 02"))
}

// IsGoingBack reports whether the player left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// formatDuration renders a run length as m:ss.
func formatDuration(secs int) string {
	if secs <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
