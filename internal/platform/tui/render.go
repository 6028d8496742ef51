package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flirt/internal/game"
)

// Styles used across the game screen.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	textStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

	hiddenCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	heartCardStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	blankCardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	opportunityBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// renderCard styles one card by what is visible of it.
func renderCard(c game.CardView) string {
	switch {
	case !c.Revealed:
		return hiddenCardStyle.Render(c.String())
	case c.Heart:
		return heartCardStyle.Render(c.String())
	default:
		return blankCardStyle.Render(c.String())
	}
}

// renderOpportunity draws one board slot. index is 1-based as typed by the player.
func renderOpportunity(index int, o *game.Opportunity, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("%d. %s", index, nameStyle.Render(strings.ToUpper(o.Name())))
	if o.Description() != "" {
		header += "  " + textStyle.Render(o.Description())
	}
	b.WriteString(header)
	b.WriteString("\n")

	cards := o.Cards()
	if len(cards) == 0 {
		b.WriteString(dimStyle.Render("(no cards)"))
	}
	for _, c := range cards {
		b.WriteString(renderCard(c))
	}
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"hearts %d/%d   time ~%d",
		o.RevealedHeartCount(), o.HeartsNeeded(), o.RemainingTime(),
	)))

	box := opportunityBox
	if width > 4 {
		box = box.Width(width - 4)
	}
	return box.Render(b.String())
}

// renderBoard draws the status line and every opportunity in play.
func renderBoard(e *game.Engine, width int) string {
	var b strings.Builder

	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"turn %d   deck %d   rejections %d",
		e.Turn(), e.DeckRemaining(), e.Rejections(),
	)))
	b.WriteString("\n")

	board := e.Board()
	if len(board) == 0 {
		b.WriteString(dimStyle.Render("Nobody is around. End the turn and wait."))
		b.WriteString("\n")
	}
	for i, o := range board {
		b.WriteString(renderOpportunity(i+1, o, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderOutcome draws the end-of-game banner, or "" while the game runs.
func renderOutcome(e *game.Engine) string {
	switch e.State() {
	case game.StateWon:
		return winStyle.Render(fmt.Sprintf("You have a date with %s!", e.Winner().Name()))
	case game.StateDeckExhausted:
		return overStyle.Render("The night is over. Nobody is left.")
	default:
		return ""
	}
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
