package gamification

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"diagnostics-backend/internal/sessions"
)

// Synthetic competitor scores are drawn once per session from these fixed
// ranges and reused for the session's lifetime.
var competitorRanges = [][2]int{{20, 55}, {40, 60}}

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board is the session leaderboard: the user plus two synthetic
// comparison businesses, sorted by score descending.
type Board struct {
	Entries         []Entry `json:"entries"`
	Average         int     `json:"average"`
	PerformanceText string  `json:"performanceText"`
}

// Calculator builds leaderboards with a stable per-session seed. The
// random source is injected so tests can supply deterministic draws.
type Calculator struct {
	Sessions sessions.Store
	RandInt  func(min, max int) int
}

// NewCalculator constructs a Calculator using math/rand draws.
func NewCalculator(store sessions.Store) *Calculator {
	return &Calculator{
		Sessions: store,
		RandInt: func(min, max int) int {
			return rand.Intn(max-min+1) + min
		},
	}
}

// Leaderboard returns the board for a session. Competitor scores are
// generated on first call and persisted, so repeated renders within a
// session never jitter.
func (c *Calculator) Leaderboard(ctx context.Context, sessionID, businessName string, score int) (Board, error) {
	competitors, err := c.competitorScores(ctx, sessionID)
	if err != nil {
		return Board{}, err
	}

	entries := []Entry{
		{Name: "Other Business", Score: competitors[0]},
		{Name: "Other Business", Score: competitors[1]},
		{Name: businessName, Score: score},
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	average := int(math.Round(float64(sum) / float64(len(entries))))

	return Board{
		Entries:         entries,
		Average:         average,
		PerformanceText: performanceText(score, average),
	}, nil
}

func (c *Calculator) competitorScores(ctx context.Context, sessionID string) ([]int, error) {
	state, err := c.Sessions.Get(ctx, sessionID)
	if err != nil && err != sessions.ErrNotFound {
		return nil, err
	}
	if len(state.CompetitorScores) == len(competitorRanges) {
		return state.CompetitorScores, nil
	}

	scores := make([]int, 0, len(competitorRanges))
	for _, r := range competitorRanges {
		scores = append(scores, c.RandInt(r[0], r[1]))
	}
	state.ID = sessionID
	state.CompetitorScores = scores
	if err := c.Sessions.Put(ctx, state); err != nil {
		return nil, err
	}
	return scores, nil
}

// performanceText states the user's standing relative to the board
// average. A zero average cannot anchor a percentage, so it reads as on
// par instead of dividing by zero.
func performanceText(score, average int) string {
	if average == 0 || score == average {
		return "You are performing on par with similar businesses."
	}
	if score > average {
		percent := int(math.Round(float64(score-average) / float64(average) * 100))
		return fmt.Sprintf("You are performing better than %d%% of similar businesses.", percent)
	}
	percent := int(math.Round(float64(average-score) / float64(average) * 100))
	return fmt.Sprintf("You are performing worse than %d%% of similar businesses.", percent)
}
