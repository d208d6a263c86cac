// internal/console/input.go
//
// Parsing of a single line of player input.

package console

import (
	"errors"
	"strconv"
	"strings"
)

// QuitSentinel is the guess value that ends a round.
const QuitSentinel = -1

// Kind classifies a parsed input line.
type Kind int

const (
	KindGuess Kind = iota
	KindQuit
	KindToggleHints
)

// Input is a parsed line.
type Input struct {
	Kind  Kind
	Guess int // set for KindGuess and KindQuit
}

// ErrNotANumber is returned for lines that are neither a number nor a command.
var ErrNotANumber = errors.New("please enter a whole number")

// ParseInput interprets one line. Negative numbers are passed through as
// guesses; the engine treats them as a quit.
func ParseInput(line string) (Input, error) {
	s := strings.ToLower(strings.TrimSpace(line))
	switch s {
	case "q", "quit", "exit":
		return Input{Kind: KindQuit, Guess: QuitSentinel}, nil
	case "h", "hint", "hints":
		return Input{Kind: KindToggleHints}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Input{}, ErrNotANumber
	}
	return Input{Kind: KindGuess, Guess: n}, nil
}
