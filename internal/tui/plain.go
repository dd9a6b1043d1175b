package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tatianab/stranded/internal/engine"
)

// RunPlain plays session as a line-oriented REPL, for pipes and dumb
// terminals. It returns when in is exhausted or the player types /quit.
func RunPlain(session *engine.Session, in io.Reader, out io.Writer) error {
	intro, err := session.Intro()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n\n%s\n\n> ", welcomeMessage, intro)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "/quit" {
			return nil
		}
		if input != "" {
			result, err := session.Submit(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n\n", result.Text)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}
