package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

var (
	menuTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSubtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuBestStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuSummaryStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// MenuItem is one profile in the picker.
type MenuItem struct {
	GameID  string
	Title   string
	Summary string
	Best    int // 0 when nothing is recorded or scores are disabled
}

// MenuModel is the profile picker. Selecting a profile or opening the
// scoreboard does not end the program; SessionModel reads Selected and
// WantsScoreboard after each update.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	keys           *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered profile with its best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	profiles := registry.List()
	items := make([]MenuItem, len(profiles))
	for i, p := range profiles {
		items[i] = MenuItem{GameID: p.ID, Title: p.Title, Summary: p.Summary}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(p.ID); err == nil {
			items[i].Best = best
		}
	}

	return MenuModel{
		items: items,
		width: cfg.ScreenW,
		keys:  NewKeyMapper(0),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = (m.cursor - 1 + len(m.items)) % max(1, len(m.items))
		case MenuActionDown:
			m.cursor = (m.cursor + 1) % max(1, len(m.items))
		case MenuActionSelect:
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
			}
		case MenuActionScoreboard:
			m.openScoreboard = true
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	lines = append(lines,
		"",
		menuTitleStyle.Render("S K Y   S H O O T E R"),
		menuSubtleStyle.Render("Select a profile"),
		"",
	)

	for i, item := range m.items {
		name := fmt.Sprintf(" %-14s ", item.Title)
		if i == m.cursor {
			name = menuCursorStyle.Render(name)
		}
		best := menuSubtleStyle.Render("no runs yet")
		if item.Best > 0 {
			best = menuBestStyle.Render(fmt.Sprintf("best %d", item.Best))
		}
		lines = append(lines,
			name+"  "+best,
			menuSummaryStyle.Render(item.Summary),
			"",
		)
	}

	lines = append(lines, menuSubtleStyle.Render("Up/Down: Move  Enter: Play  Tab: Scores  Q: Quit"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen profile, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
