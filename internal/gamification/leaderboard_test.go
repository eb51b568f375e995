package gamification

import (
	"context"
	"testing"

	"diagnostics-backend/internal/sessions"
)

func fixedCalculator(store sessions.Store, draws ...int) *Calculator {
	i := 0
	return &Calculator{
		Sessions: store,
		RandInt: func(min, max int) int {
			v := draws[i%len(draws)]
			i++
			return v
		},
	}
}

func TestLeaderboardSortsAndAverages(t *testing.T) {
	store := sessions.NewMemoryStore()
	calc := fixedCalculator(store, 40, 60)

	board, err := calc.Leaderboard(context.Background(), "s1", "Acme Bakery", 80)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board.Entries))
	}
	if board.Entries[0].Name != "Acme Bakery" || board.Entries[0].Score != 80 {
		t.Fatalf("expected the user on top, got %+v", board.Entries[0])
	}
	if board.Entries[1].Score != 60 || board.Entries[2].Score != 40 {
		t.Fatalf("expected descending competitor scores, got %+v", board.Entries)
	}
	if board.Average != 60 {
		t.Fatalf("expected average 60, got %d", board.Average)
	}
	if board.PerformanceText != "You are performing better than 33% of similar businesses." {
		t.Fatalf("unexpected performance text: %q", board.PerformanceText)
	}
}

func TestLeaderboardStableWithinSession(t *testing.T) {
	store := sessions.NewMemoryStore()
	calc := fixedCalculator(store, 25, 50, 99, 99)

	first, err := calc.Leaderboard(context.Background(), "s1", "Acme", 70)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	second, err := calc.Leaderboard(context.Background(), "s1", "Acme", 70)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	for i := range first.Entries {
		if first.Entries[i] != second.Entries[i] {
			t.Fatalf("expected stable board, got %+v then %+v", first.Entries, second.Entries)
		}
	}

	state, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get session: %v", err)
	}
	if len(state.CompetitorScores) != 2 {
		t.Fatalf("expected persisted competitor scores, got %v", state.CompetitorScores)
	}
}

func TestLeaderboardNewSessionDrawsFresh(t *testing.T) {
	store := sessions.NewMemoryStore()
	calc := fixedCalculator(store, 20, 40, 55, 60)

	first, err := calc.Leaderboard(context.Background(), "s1", "Acme", 70)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	second, err := calc.Leaderboard(context.Background(), "s2", "Acme", 70)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if first.Average == second.Average {
		t.Fatalf("expected different draws per session, both averaged %d", first.Average)
	}
}

func TestPerformanceText(t *testing.T) {
	cases := []struct {
		score   int
		average int
		want    string
	}{
		{60, 60, "You are performing on par with similar businesses."},
		{0, 0, "You are performing on par with similar businesses."},
		{80, 60, "You are performing better than 33% of similar businesses."},
		{40, 60, "You are performing worse than 33% of similar businesses."},
	}
	for _, tc := range cases {
		if got := performanceText(tc.score, tc.average); got != tc.want {
			t.Fatalf("performanceText(%d, %d) = %q, want %q", tc.score, tc.average, got, tc.want)
		}
	}
}

func TestCompetitorScoresWithinRanges(t *testing.T) {
	store := sessions.NewMemoryStore()
	calc := NewCalculator(store)

	board, err := calc.Leaderboard(context.Background(), "s1", "Acme", 50)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	state, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get session: %v", err)
	}
	if len(state.CompetitorScores) != 2 {
		t.Fatalf("expected 2 competitor scores, got %v", state.CompetitorScores)
	}
	if s := state.CompetitorScores[0]; s < 20 || s > 55 {
		t.Fatalf("first competitor score %d outside [20,55]", s)
	}
	if s := state.CompetitorScores[1]; s < 40 || s > 60 {
		t.Fatalf("second competitor score %d outside [40,60]", s)
	}
	if len(board.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board.Entries))
	}
}
