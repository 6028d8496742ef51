package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/flirt/internal/game"
	"github.com/vovakirdan/flirt/internal/session"
)

// RunPlain plays s as a line-oriented conversation over in and out.
// It returns when the game ends, the player quits, or in is exhausted.
func RunPlain(in io.Reader, out io.Writer, s *session.Session) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, msg := range s.Intro() {
		fmt.Fprintln(w, msg)
	}

	scanner := bufio.NewScanner(in)
	for !s.Over() {
		writePlainBoard(w, s.Engine())
		fmt.Fprint(w, "> ")
		if err := w.Flush(); err != nil {
			return err
		}

		if !scanner.Scan() {
			s.Abandon()
			fmt.Fprintln(w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		msgs, err := s.Execute(line)
		if errors.Is(err, session.ErrQuit) {
			fmt.Fprintln(w, "Goodbye.")
			return nil
		}
		for _, msg := range msgs {
			fmt.Fprintln(w, msg)
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	return nil
}

func writePlainBoard(w io.Writer, e *game.Engine) {
	fmt.Fprintf(w, "\n-- turn %d, %d left in the deck --\n", e.Turn(), e.DeckRemaining())
	for i, o := range e.Board() {
		fmt.Fprintf(w, "#%d %s\n", i+1, o)
	}
}
