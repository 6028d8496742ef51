package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the deck sidebar
	sidebarWidth       = 22
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextDeck key.Binding
	PrevDeck key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDeck, k.PrevDeck, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextDeck, k.PrevDeck, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDeck: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next deck"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev deck"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyTab is one selectable filter; an empty id means every deck.
type historyTab struct {
	id    string
	title string
}

// HistoryModel is the Bubble Tea model for browsing recorded games.
type HistoryModel struct {
	store   *storage.Store
	limit   int
	tabs    []historyTab
	cursor  int
	results []storage.Result
	stats   *storage.Stats
	err     error

	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int
}

// NewHistoryModel creates a history screen showing up to limit results per deck.
func NewHistoryModel(store *storage.Store, limit, width, height int) HistoryModel {
	tabs := []historyTab{{id: "", title: "All decks"}}
	for _, d := range deck.List() {
		tabs = append(tabs, historyTab{id: d.ID, title: d.Name})
	}

	m := HistoryModel{
		store:  store,
		limit:  limit,
		tabs:   tabs,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// createTable sizes the result table to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Deck", Width: 12},
		{Title: "Outcome", Width: 14},
		{Title: "Date with", Width: 10},
		{Title: "Turns", Width: 5},
		{Title: "No's", Width: 4},
	}

	tableWidth := m.width - 4
	if m.showSidebar() {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 70; extra > 0 {
		columns[3].Width += min(extra, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("161")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches results and stats for the selected tab.
func (m *HistoryModel) load() {
	m.results, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		id := m.tabs[m.cursor].id
		m.results, m.err = m.store.RecentResults(id, m.limit)
		if m.err == nil {
			m.stats, m.err = m.store.Stats(id)
		}
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.DeckID,
			r.Outcome,
			r.Opportunity,
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Rejections),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDeck):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevDeck):
			m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("PAST NIGHTS - %s", m.tabs[m.cursor].title)
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.renderTableContent())

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(content)
	}
	b.WriteString("\n")

	if m.stats != nil {
		b.WriteString(statusStyle.Render(FormatStats(m.stats)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Decks\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, t := range m.tabs {
		cursor := "  "
		line := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			line = line.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := t.title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(line.Render(cursor + name))
		sb.WriteString("\n")
	}
	return style.Render(sb.String())
}

func (m HistoryModel) renderTableContent() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if len(m.results) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No nights recorded yet.\nGo and play one!")
	}
	return m.table.View()
}

// FormatStats renders aggregate numbers on one line.
func FormatStats(st *storage.Stats) string {
	line := fmt.Sprintf("%d games, %d won (%.0f%%), %d ran out, %d abandoned",
		st.Games, st.Wins, st.WinRate()*100, st.Exhausted, st.Abandoned)
	if st.Wins > 0 {
		line += fmt.Sprintf(", %.1f turns per win", st.AvgTurnsToWin)
	}
	return line
}

// RunHistory runs the history screen until the user quits.
func RunHistory(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(store, limit, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
