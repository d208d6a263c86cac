// internal/store/store.go
//
// Round history and session statistics.
// Finished rounds are recorded for the lifetime of the process so the
// console can print a session summary and the status server can report it.
// Nothing is written to disk: both backends are in-memory.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

var (
	ErrMissingID   = errors.New("store: round id is required")
	ErrDuplicateID = errors.New("store: duplicate round id")
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID           string    `json:"id"`
	Outcome      string    `json:"outcome"` // "won" | "over" | "quit"
	Target       int       `json:"target"`
	Attempts     int       `json:"attempts"`
	MaxAttempts  int       `json:"maxAttempts"`
	HintsEnabled bool      `json:"hintsEnabled"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
}

// Summary aggregates all recorded rounds.
type Summary struct {
	GamesPlayed  int `json:"gamesPlayed"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	Quits        int `json:"quits"`
	Streak       int `json:"streak"`       // consecutive wins ending with the latest round
	BestStreak   int `json:"bestStreak"`
	BestAttempts int `json:"bestAttempts"` // fewest attempts in a win; 0 if no wins
}

// Store defines the persistence interface for finished rounds.
type Store interface {
	// Save records a finished round.
	Save(ctx context.Context, r RoundRecord) error

	// Recent returns up to limit rounds, newest first.
	Recent(ctx context.Context, limit int) ([]RoundRecord, error)

	// Summary aggregates every recorded round.
	Summary(ctx context.Context) (Summary, error)

	Close() error
}

// summarize folds rounds given oldest first.
// A win extends the streak; a loss or quit resets it.
func summarize(rounds []RoundRecord) Summary {
	var s Summary
	for _, r := range rounds {
		s.GamesPlayed++
		switch r.Outcome {
		case "won":
			s.Wins++
			s.Streak++
			if s.Streak > s.BestStreak {
				s.BestStreak = s.Streak
			}
			if s.BestAttempts == 0 || r.Attempts < s.BestAttempts {
				s.BestAttempts = r.Attempts
			}
		case "over":
			s.Losses++
			s.Streak = 0
		default:
			s.Quits++
			s.Streak = 0
		}
	}
	return s
}

// NewID returns a compact 16-hex-char identifier.
func NewID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
