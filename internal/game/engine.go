// internal/game/engine.go
//
// Core game engine for a single number-guessing player.
// Responsibilities:
//   - Validate the configured range and attempt ceiling.
//   - Draw a new target on construction and on every Reset.
//   - Apply guesses through one pure transition (step) under a mutex.
//   - Track state transitions: active → won/over/quit.
//
// Notes:
//   - Round state and Settings are separate: Reset never touches Settings.
//   - The Source is only invoked while the engine lock is held.
package game

import (
	"sync"

	"github.com/robalobadob/numguess/internal/random"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMaxAttempts overrides DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) { e.cfg.MaxAttempts = n }
}

// WithSource injects the random source used to pick targets.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithHints sets the initial hints toggle (enabled by default).
func WithHints(enabled bool) Option {
	return func(e *Engine) { e.settings.HintsEnabled = enabled }
}

// Engine owns the state of one game. It is safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	src      Source
	settings Settings
	round    Round
}

// New constructs an engine for the inclusive range [min, max] and starts
// the first round.
func New(min, max int, opts ...Option) (*Engine, error) {
	if min > max {
		return nil, &InvalidRangeError{Min: min, Max: max}
	}
	e := &Engine{
		cfg:      Config{Min: min, Max: max, MaxAttempts: DefaultMaxAttempts},
		settings: Settings{HintsEnabled: true},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.MaxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	if e.src == nil {
		e.src = random.NewCryptoSource()
	}
	e.Reset()
	return e, nil
}

// Reset starts a new round with a freshly drawn target.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.round = Round{Target: e.src.IntRange(e.cfg.Min, e.cfg.Max)}
}

// MakeGuess applies one guess and returns the feedback.
// A negative guess quits the round, whatever its state.
func (e *Engine) MakeGuess(guess int) GuessResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	next, res := step(e.cfg, e.settings, e.round, guess)
	e.round = next
	return res
}

// Reveal returns the target once the round has ended. It reports false
// while the round is still active.
func (e *Engine) Reveal() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.round.Terminal() {
		return 0, false
	}
	return e.round.Target, true
}

func (e *Engine) Won() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round.Won
}

func (e *Engine) Quit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round.Quit
}

func (e *Engine) Over() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round.Over
}

func (e *Engine) Attempts() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round.Attempts
}

// Outcome reports the coarse state of the current round.
func (e *Engine) Outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round.Outcome()
}

func (e *Engine) Min() int         { return e.cfg.Min }
func (e *Engine) Max() int         { return e.cfg.Max }
func (e *Engine) MaxAttempts() int { return e.cfg.MaxAttempts }

func (e *Engine) HintsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.HintsEnabled
}

// SetHintsEnabled toggles hints without touching the round.
func (e *Engine) SetHintsEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.HintsEnabled = enabled
}
