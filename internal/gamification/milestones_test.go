package gamification

import (
	"testing"

	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/sessions"
)

func TestMilestonesForJourneySteps(t *testing.T) {
	lib := diagnostic.DefaultLibrary()
	state := sessions.State{ID: "s1", EmailCaptured: true}

	m := MilestonesFor(lib, "Marketing Effectiveness Grader", 45, state)
	if len(m.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(m.Steps))
	}
	if !m.Steps[0].Completed || !m.Steps[1].Completed {
		t.Fatalf("expected the first two steps completed on the partial report")
	}
	if !m.Steps[2].Completed {
		t.Fatalf("expected email step completed for captured email")
	}
	if m.Steps[3].Completed {
		t.Fatalf("expected sign-up step incomplete")
	}
	if m.Steps[2].Label != "Enter Email" || m.Steps[3].Label != "Sign-up" {
		t.Fatalf("unexpected step labels: %q, %q", m.Steps[2].Label, m.Steps[3].Label)
	}
}

func TestMilestonesRecommendationsCappedAtTrackLength(t *testing.T) {
	lib := diagnostic.DefaultLibrary()
	m := MilestonesFor(lib, "Cash Flow Checkup", 45, sessions.State{})
	if len(m.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(m.Recommendations))
	}
}

func TestMilestonePointerBands(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{0, 0},
		{30, 0},
		{31, 1},
		{60, 1},
		{61, 2},
		{85, 2},
		{86, 3},
		{100, 3},
	}
	for _, tc := range cases {
		if got := milestonePointer(tc.score); got != tc.want {
			t.Fatalf("milestonePointer(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}
