// internal/game/step.go
//
// The round transition function and hint rules.
//
// Evaluation order for a guess:
//   1. Negative guess → quit (even in a terminal round), attempts unchanged.
//   2. Terminal (won, over or quit) → "Game is over" without mutating anything.
//   3. Count the attempt.
//   4. Match → won.
//   5. Ceiling reached → over, target revealed in the message.
//   6. Otherwise too low / too high, plus an optional hint.

package game

import "fmt"

const (
	msgQuit      = "Exiting game..."
	msgFinished  = "Game is over. Reset to play again."
	msgTooLow    = "Too low!"
	msgTooHigh   = "Too high!"
	hintVeryNear = "You're very close!"
	hintWarmer   = "Getting warmer"
)

// Hint thresholds. Attempt counts include the guess being scored.
const (
	veryCloseAttempts = 3
	veryCloseDiff     = 5
	warmerAttempts    = 5
	warmerDiff        = 20
)

// step computes the next round and the feedback for guess. It has no side
// effects; the caller stores the returned Round.
func step(cfg Config, set Settings, r Round, guess int) (Round, GuessResult) {
	if guess < 0 {
		r.Quit = true
		return r, GuessResult{Message: msgQuit, Attempts: r.Attempts}
	}

	if r.Terminal() {
		return r, GuessResult{
			Message:           msgFinished,
			Attempts:          r.Attempts,
			RemainingAttempts: remaining(cfg, r),
		}
	}

	r.Attempts++

	if guess == r.Target {
		r.Won = true
		return r, GuessResult{
			Correct:           true,
			Message:           fmt.Sprintf("Correct! You guessed it in %d attempts.", r.Attempts),
			Attempts:          r.Attempts,
			RemainingAttempts: remaining(cfg, r),
		}
	}

	if r.Attempts >= cfg.MaxAttempts {
		r.Over = true
		return r, GuessResult{
			Message: fmt.Sprintf("Game Over! You've used all %d attempts. The number was %d.",
				cfg.MaxAttempts, r.Target),
			Attempts: r.Attempts,
		}
	}

	msg := msgTooHigh
	if guess < r.Target {
		msg = msgTooLow
	}
	res := GuessResult{
		Message:           msg,
		Attempts:          r.Attempts,
		RemainingAttempts: remaining(cfg, r),
	}
	if set.HintsEnabled {
		res.Hint = hint(r, guess)
	}
	return r, res
}

// hint returns the proximity hint for guess, or "" when none applies.
func hint(r Round, guess int) string {
	// unsigned so that extreme ranges cannot overflow
	var diff uint
	if guess >= r.Target {
		diff = uint(guess) - uint(r.Target)
	} else {
		diff = uint(r.Target) - uint(guess)
	}
	switch {
	case r.Attempts >= veryCloseAttempts && diff <= veryCloseDiff:
		return hintVeryNear
	case r.Attempts >= warmerAttempts && diff <= warmerDiff:
		return hintWarmer
	}
	return ""
}

func remaining(cfg Config, r Round) int {
	if n := cfg.MaxAttempts - r.Attempts; n > 0 {
		return n
	}
	return 0
}
