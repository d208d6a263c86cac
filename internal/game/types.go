// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Source: injected uniform-integer capability used to pick targets.
//   - Config: immutable range and attempt ceiling.
//   - Settings: player preferences that survive Reset (hints toggle).
//   - Round: per-round state, fully reinitialized by Reset.
//   - GuessResult: feedback returned for every guess.
//   - Outcome: coarse round state (active/won/over/quit).

package game

import (
	"errors"
	"fmt"
)

// DefaultMaxAttempts is the attempt ceiling used when none is configured.
const DefaultMaxAttempts = 10

// Source produces a uniformly distributed integer in [min, max].
type Source interface {
	IntRange(min, max int) int
}

// Config holds the bounds of a game. It does not change after New.
type Config struct {
	Min         int // inclusive lower bound
	Max         int // inclusive upper bound
	MaxAttempts int // accepted guesses allowed per round
}

// Settings holds preferences that are not part of round state.
type Settings struct {
	HintsEnabled bool
}

// Round is the mutable state of the current round.
type Round struct {
	Target   int  // hidden number in [Min, Max]
	Attempts int  // accepted guesses since the last reset
	Won      bool // a guess matched Target
	Quit     bool // the player sent the quit sentinel
	Over     bool // Attempts reached MaxAttempts without a win
}

// Terminal reports whether further guesses are ignored until reset.
func (r Round) Terminal() bool { return r.Won || r.Over || r.Quit }

// Outcome represents the coarse state of a round.
type Outcome string

const (
	OutcomeActive Outcome = "active"
	OutcomeWon    Outcome = "won"
	OutcomeOver   Outcome = "over"
	OutcomeQuit   Outcome = "quit"
)

// Outcome reports the round state. A win or loss takes precedence over a
// quit sent afterwards.
func (r Round) Outcome() Outcome {
	switch {
	case r.Won:
		return OutcomeWon
	case r.Over:
		return OutcomeOver
	case r.Quit:
		return OutcomeQuit
	}
	return OutcomeActive
}

// GuessResult is the feedback for a single call to MakeGuess.
type GuessResult struct {
	Correct           bool   `json:"correct"`
	Message           string `json:"message"`
	Attempts          int    `json:"attempts"`
	RemainingAttempts int    `json:"remainingAttempts"` // 0 on the quit path
	Hint              string `json:"hint,omitempty"`
}

// ErrInvalidMaxAttempts is returned by New when the attempt ceiling is not positive.
var ErrInvalidMaxAttempts = errors.New("game: max attempts must be positive")

// InvalidRangeError is returned by New when min > max.
type InvalidRangeError struct {
	Min int
	Max int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("game: invalid range [%d, %d]: min is greater than max", e.Min, e.Max)
}
