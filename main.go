// main.go
//
// Entry point for the numguess console game.
// Wiring:
//   - .env (godotenv) → environment → config.Load (caarlos0/env).
//   - zerolog global logger on stderr; game output stays on stdout.
//   - Target source: seeded PCG from NUMGUESS_SEED, the daily seed or a fresh logged seed.
//   - Stats store (in-memory SQLite or plain memory) and optional status server.
//   - Console session on stdin/stdout until the player leaves or SIGINT.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/console"
	"github.com/robalobadob/numguess/internal/daily"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/httpserver"
	"github.com/robalobadob/numguess/internal/random"
	"github.com/robalobadob/numguess/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open stats store")
	}
	defer st.Close()

	engine, err := game.New(cfg.Min, cfg.Max,
		game.WithMaxAttempts(cfg.MaxAttempts),
		game.WithHints(cfg.Hints),
		game.WithSource(targetSource(cfg, time.Now())),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	if cfg.StatusAddr != "" {
		srv := httpserver.New(st)
		go func() {
			log.Info().Str("addr", cfg.StatusAddr).Msg("starting status server")
			if err := srv.Start(cfg.StatusAddr); err != nil {
				log.Error().Err(err).Msg("status server exited")
			}
		}()
	}

	sess := console.New(engine, st, os.Stdin, os.Stdout)
	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("session failed")
		os.Exit(1)
	}
}

func setupLogger(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == config.LogFormatConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.Stats == config.StatsMemory {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(ctx)
}

// targetSource picks how targets are drawn: daily mode wins over an
// explicit seed, and with neither a fresh seed is drawn and logged so the
// session can be replayed with NUMGUESS_SEED.
func targetSource(cfg config.Config, now time.Time) game.Source {
	switch {
	case cfg.Daily:
		log.Info().Str("date", daily.DateKey(now)).Msg("daily mode")
		return random.NewSeeded(daily.Seed(now, cfg.DailySalt))
	case cfg.Seed != 0:
		log.Info().Uint64("seed", cfg.Seed).Msg("seeded mode")
		return random.NewSeeded(cfg.Seed)
	}
	seed, err := random.NewSeed()
	if err != nil || seed == 0 {
		log.Warn().Err(err).Msg("no replay seed; drawing targets from crypto/rand")
		return random.NewCryptoSource()
	}
	log.Info().Uint64("seed", seed).Msg("session seed (set NUMGUESS_SEED to replay)")
	return random.NewSeeded(seed)
}
