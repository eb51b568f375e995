package gamification

import (
	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/sessions"
)

// MilestoneStep is one step of the four-step journey tracker.
type MilestoneStep struct {
	Label       string `json:"label"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
}

// Milestones is the tracker state for the partial report: the journey
// steps, a pointer into the per-tool recommendation track, and the
// recommendations themselves.
type Milestones struct {
	Steps           []MilestoneStep `json:"steps"`
	PointerIndex    int             `json:"pointerIndex"`
	Recommendations []string        `json:"recommendations"`
}

// milestoneTrackLen is how many recommendations the tracker shows.
const milestoneTrackLen = 4

// MilestonesFor builds the tracker from the session state and score. The
// first two steps complete by reaching the partial report; the rest track
// email capture and sign-up.
func MilestonesFor(lib *diagnostic.Library, toolName string, score int, state sessions.State) Milestones {
	recs := lib.TopicRules(toolName).Recommendations
	if len(recs) > milestoneTrackLen {
		recs = recs[:milestoneTrackLen]
	}

	return Milestones{
		Steps: []MilestoneStep{
			{Label: "Take Diagnostic", Completed: true, Description: "You completed the module diagnostic to assess your current business status"},
			{Label: "Free Insights", Completed: true, Description: "This is a preview of your results. See where you stand!"},
			{Label: "Enter Email", Completed: state.EmailCaptured, Description: "Want a detailed breakdown for this module? Enter your email & we'll send it right over"},
			{Label: "Sign-up", Completed: state.SignedUp, Description: "Sign up to unlock all features: multi-page report, tailored recommendations and staffing match tool"},
		},
		PointerIndex:    milestonePointer(score),
		Recommendations: recs,
	}
}

// milestonePointer bands are intentionally different from the level tiers;
// they index the four-slot recommendation track.
func milestonePointer(score int) int {
	switch {
	case score <= 30:
		return 0
	case score <= 60:
		return 1
	case score <= 85:
		return 2
	default:
		return 3
	}
}
