// internal/console/session.go
//
// Interactive console loop around a game.Engine.
// Responsibilities:
//   - Prompt, read and parse lines; re-prompt on bad input without a guess.
//   - Print the engine's message, hint and remaining attempts.
//   - Record every finished round in the stats store.
//   - Offer a replay after a win or loss; stop on quit or end of input.
//   - Print a session summary before returning.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/store"
)

// Session drives one player through any number of rounds.
type Session struct {
	engine *game.Engine
	store  store.Store
	in     io.Reader
	lines  <-chan string // fed by readLines while Run is active
	out    io.Writer
	now    func() time.Time

	roundStart time.Time
}

// New builds a Session reading from in and writing to out.
func New(e *game.Engine, st store.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		engine: e,
		store:  st,
		in:     in,
		out:    out,
		now:    time.Now,
	}
}

// Run plays until the player quits, declines a replay, input ends or ctx
// is cancelled. Only a cancelled context or a store failure is an error;
// cancellation is noticed even while waiting for input.
func (s *Session) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	defer close(done)
	s.lines = s.readLines(done)

	s.banner()
	for {
		line, ok, err := s.prompt(ctx, "Your guess (q to quit, h to toggle hints): ")
		if err != nil {
			return err
		}
		if !ok {
			// End of input counts as quitting.
			line = "q"
		}
		in, err := ParseInput(line)
		if err != nil {
			s.printf("Please enter a whole number between %d and %d.\n", s.engine.Min(), s.engine.Max())
			continue
		}
		if in.Kind == KindToggleHints {
			s.toggleHints()
			continue
		}

		res := s.engine.MakeGuess(in.Guess)
		s.printResult(res)

		switch s.engine.Outcome() {
		case game.OutcomeActive:
			continue
		case game.OutcomeQuit:
			if target, ok := s.engine.Reveal(); ok {
				s.printf("The number was %d.\n", target)
			}
			if err := s.record(ctx); err != nil {
				return err
			}
			return s.finish(ctx)
		default:
			if err := s.record(ctx); err != nil {
				return err
			}
			again, err := s.playAgain(ctx)
			if err != nil {
				return err
			}
			if !again {
				return s.finish(ctx)
			}
			s.engine.Reset()
			s.banner()
		}
	}
}

func (s *Session) banner() {
	s.roundStart = s.now()
	s.printf("I'm thinking of a number between %d and %d. You have %d attempts.\n",
		s.engine.Min(), s.engine.Max(), s.engine.MaxAttempts())
}

// readLines scans input on its own goroutine so a blocked read never
// holds up cancellation. The channel closes at end of input.
func (s *Session) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Warn().Err(err).Msg("read input")
		}
	}()
	return lines
}

// prompt waits for the next line. ok is false at end of input; err is set
// only when ctx is cancelled first.
func (s *Session) prompt(ctx context.Context, text string) (line string, ok bool, err error) {
	s.printf("%s", text)
	select {
	case line, ok = <-s.lines:
		if !ok {
			s.printf("\n")
		}
		return line, ok, nil
	case <-ctx.Done():
		s.printf("\n")
		return "", false, ctx.Err()
	}
}

func (s *Session) printResult(res game.GuessResult) {
	s.printf("%s\n", res.Message)
	if res.Hint != "" {
		s.printf("Hint: %s\n", res.Hint)
	}
	if s.engine.Outcome() == game.OutcomeActive {
		s.printf("Attempts left: %d\n", res.RemainingAttempts)
	}
}

func (s *Session) toggleHints() {
	on := !s.engine.HintsEnabled()
	s.engine.SetHintsEnabled(on)
	if on {
		s.printf("Hints on.\n")
	} else {
		s.printf("Hints off.\n")
	}
	log.Debug().Bool("hints", on).Msg("hints toggled")
}

func (s *Session) playAgain(ctx context.Context) (bool, error) {
	line, ok, err := s.prompt(ctx, "Play again? (y/n): ")
	if err != nil || !ok {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// record saves the finished round. A quit before any guess is not a round.
func (s *Session) record(ctx context.Context) error {
	outcome := s.engine.Outcome()
	attempts := s.engine.Attempts()
	if outcome == game.OutcomeQuit && attempts == 0 {
		return nil
	}
	target, _ := s.engine.Reveal()
	r := store.RoundRecord{
		ID:           store.NewID(),
		Outcome:      string(outcome),
		Target:       target,
		Attempts:     attempts,
		MaxAttempts:  s.engine.MaxAttempts(),
		HintsEnabled: s.engine.HintsEnabled(),
		StartedAt:    s.roundStart,
		FinishedAt:   s.now(),
	}
	if err := s.store.Save(ctx, r); err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	log.Info().Str("round", r.ID).Str("outcome", r.Outcome).Int("attempts", r.Attempts).Msg("round finished")
	return nil
}

func (s *Session) finish(ctx context.Context) error {
	sum, err := s.store.Summary(ctx)
	if err != nil {
		return fmt.Errorf("session summary: %w", err)
	}
	if sum.GamesPlayed == 0 {
		s.printf("Goodbye!\n")
		return nil
	}
	s.printf("Played %d, won %d, lost %d, quit %d. Current streak %d, best streak %d.\n",
		sum.GamesPlayed, sum.Wins, sum.Losses, sum.Quits, sum.Streak, sum.BestStreak)
	if sum.BestAttempts > 0 {
		s.printf("Best win: %d attempts.\n", sum.BestAttempts)
	}
	s.printf("Goodbye!\n")
	return nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
