package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flirt/internal/config"
	"github.com/vovakirdan/flirt/internal/deck"
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuKeyMap defines the key bindings of the deck picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Harder key.Binding
	Easier key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Harder: key.NewBinding(key.WithKeys("right", "l", "d")),
		Easier: key.NewBinding(key.WithKeys("left", "h", "a")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for picking a deck and difficulty.
type MenuModel struct {
	decks      []deck.Info
	cursor     int
	difficulty int // Index into difficulties
	keys       MenuKeyMap
	width      int
	quitting   bool
	selected   bool
}

// NewMenuModel creates a picker starting at preset.
func NewMenuModel(preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		decks:      deck.List(),
		difficulty: 1,
		keys:       DefaultMenuKeyMap(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	for i, d := range m.decks {
		if d.ID == deck.DefaultID {
			m.cursor = i
		}
	}
	return m
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
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.decks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Harder):
			m.difficulty = min(m.difficulty+1, len(difficulties)-1)
		case key.Matches(msg, m.keys.Easier):
			m.difficulty = max(m.difficulty-1, 0)
		case key.Matches(msg, m.keys.Select):
			if len(m.decks) > 0 {
				m.selected = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("FLIRT"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Where do you spend the night?", m.width))
	b.WriteString("\n\n")

	for i, d := range m.decks {
		cursor := "  "
		line := fmt.Sprintf("%s (%d people)", d.Name, d.Count)
		if i == m.cursor {
			cursor = "> "
			line = nameStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< difficulty: %s >", difficulties[m.difficulty]), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("up/down deck, left/right difficulty, enter play, q quit"), m.width))
	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	DeckID     string
	Difficulty config.DifficultyPreset
	Quit       bool
}

// Result reports what the player picked.
func (m MenuModel) Result() MenuResult {
	if !m.selected || len(m.decks) == 0 {
		return MenuResult{Quit: true}
	}
	return MenuResult{
		DeckID:     m.decks[m.cursor].ID,
		Difficulty: difficulties[m.difficulty],
	}
}

// RunMenu runs the picker and returns the selection.
func RunMenu(preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(preset), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}
