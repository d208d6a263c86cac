package main

import (
	"context"
	"testing"
	"time"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/random"
)

func TestTargetSource(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		cfg        config.Config
		wantSeeded bool
	}{
		{name: "fresh seed", cfg: config.Config{}, wantSeeded: true},
		{name: "seed", cfg: config.Config{Seed: 9}, wantSeeded: true},
		{name: "daily", cfg: config.Config{Daily: true, DailySalt: "s"}, wantSeeded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, seeded := targetSource(tt.cfg, now).(*random.Seeded)
			if seeded != tt.wantSeeded {
				t.Fatalf("seeded = %v, want %v", seeded, tt.wantSeeded)
			}
		})
	}
}

func TestDailySourceIsSharedByDate(t *testing.T) {
	cfg := config.Config{Daily: true, DailySalt: "salt"}
	morning := time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC)
	night := time.Date(2026, 10, 17, 22, 0, 0, 0, time.UTC)

	a, b := targetSource(cfg, morning), targetSource(cfg, night)
	for i := 0; i < 5; i++ {
		if x, y := a.IntRange(1, 100), b.IntRange(1, 100); x != y {
			t.Fatalf("draw %d differs within the same day: %d vs %d", i, x, y)
		}
	}
}

func TestOpenStore(t *testing.T) {
	for _, backend := range []string{config.StatsMemory, config.StatsSQLite} {
		t.Run(backend, func(t *testing.T) {
			st, err := openStore(context.Background(), config.Config{Stats: backend})
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer st.Close()
			if _, err := st.Summary(context.Background()); err != nil {
				t.Fatalf("summary: %v", err)
			}
		})
	}
}

func TestFreshSeedsDiffer(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	a, b := targetSource(config.Config{}, now), targetSource(config.Config{}, now)
	for i := 0; i < 5; i++ {
		if a.IntRange(1, 1_000_000) != b.IntRange(1, 1_000_000) {
			return
		}
	}
	t.Fatal("expected sessions without a configured seed to draw different targets")
}
