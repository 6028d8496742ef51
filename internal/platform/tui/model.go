// Package tui provides the terminal front ends for the game: a Bubble Tea
// screen for interactive play, a plain line mode for pipes, and a result
// history table.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flirt/internal/session"
)

// maxLog is how many messages the game screen keeps.
const maxLog = 8

type logLine struct {
	text string
	err  bool
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	session *session.Session
	input   textinput.Model
	help    help.Model
	keys    KeyMap

	log      []logLine
	last     string // Last submitted command, for recall
	width    int
	quitting bool
}

// NewModel creates a game screen around s.
func NewModel(s *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "reveal 1, ask bella, end, help"
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		session: s,
		input:   ti,
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
	m.appendLog(s.Intro()...)
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.session.Abandon()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Restart):
			return m.restart(), nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Recall):
			m.input.SetValue(m.last)
			m.input.CursorEnd()
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the typed command through the session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	m.last = line

	msgs, err := m.session.Execute(line)
	if errors.Is(err, session.ErrQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	m.appendLog(msgs...)
	if err != nil {
		m.log = append(m.log, logLine{text: err.Error(), err: true})
		m.trimLog()
	}
	return m, nil
}

func (m Model) restart() Model {
	if err := m.session.Restart(); err != nil {
		m.log = append(m.log, logLine{text: err.Error(), err: true})
		m.trimLog()
		return m
	}
	m.log = nil
	m.appendLog(m.session.Intro()...)
	return m
}

func (m *Model) appendLog(msgs ...string) {
	for _, msg := range msgs {
		m.log = append(m.log, logLine{text: msg})
	}
	m.trimLog()
}

func (m *Model) trimLog() {
	if n := len(m.log); n > maxLog {
		m.log = m.log[n-maxLog:]
	}
}

// Quitting reports whether the player left.
func (m Model) Quitting() bool { return m.quitting }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("FLIRT"), m.width))
	b.WriteString("\n\n")

	engine := m.session.Engine()
	b.WriteString(renderBoard(engine, m.width))
	b.WriteString("\n")

	for _, l := range m.log {
		if l.err {
			b.WriteString(errorStyle.Render(l.text))
		} else {
			b.WriteString(l.text)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if banner := renderOutcome(engine); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Press C-r for another night or esc to leave."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for s.
func Run(s *session.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
