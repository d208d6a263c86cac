package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robalobadob/numguess/internal/store"
)

func newTestServer(t *testing.T, rounds int) *Server {
	t.Helper()
	st := store.NewMemoryStore()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	for i := 0; i < rounds; i++ {
		outcome := "won"
		if i%2 == 1 {
			outcome = "over"
		}
		err := st.Save(context.Background(), store.RoundRecord{
			ID:          store.NewID(),
			Outcome:     outcome,
			Target:      i,
			Attempts:    i%10 + 1,
			MaxAttempts: 10,
			StartedAt:   now,
			FinishedAt:  now,
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	return New(st)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, 0), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestStats(t *testing.T) {
	rec := get(t, newTestServer(t, 3), "/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var sum store.Summary
	if err := json.NewDecoder(rec.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.GamesPlayed != 3 || sum.Wins != 2 || sum.Losses != 1 || sum.Streak != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestRounds(t *testing.T) {
	s := newTestServer(t, 150)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantLen  int
	}{
		{name: "default limit", path: "/rounds", wantCode: http.StatusOK, wantLen: defaultLimit},
		{name: "explicit limit", path: "/rounds?limit=5", wantCode: http.StatusOK, wantLen: 5},
		{name: "capped limit", path: "/rounds?limit=1000", wantCode: http.StatusOK, wantLen: maxLimit},
		{name: "bad limit", path: "/rounds?limit=abc", wantCode: http.StatusBadRequest},
		{name: "zero limit", path: "/rounds?limit=0", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.path)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantCode != http.StatusOK {
				var body map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["error"] != "bad_limit" {
					t.Fatalf("expected bad_limit error, got %v (%v)", body, err)
				}
				return
			}
			var rounds []store.RoundRecord
			if err := json.NewDecoder(rec.Body).Decode(&rounds); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(rounds) != tt.wantLen {
				t.Fatalf("expected %d rounds, got %d", tt.wantLen, len(rounds))
			}
			if rounds[0].Target != 149 {
				t.Fatalf("expected newest round first, got target %d", rounds[0].Target)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := get(t, newTestServer(t, 0), "/guess")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNoWriteRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stats", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
