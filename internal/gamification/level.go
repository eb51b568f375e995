package gamification

// Level is one of the four achievement tiers used for gamified framing.
type Level struct {
	Rank        int    `json:"rank"`
	Label       string `json:"label"`
	Description string `json:"description"`
	// PointsToNext is the distance to the next tier boundary, nil at the
	// top tier.
	PointsToNext *int   `json:"pointsToNext,omitempty"`
	NextLabel    string `json:"nextLabel,omitempty"`
}

// Tier boundaries partition [0,100]. The upper bound is inclusive.
const (
	gettingStartedMax = 30
	builderMax        = 70
	operatorMax       = 90
)

const (
	labelGettingStarted = "Level 1: Getting Started"
	labelBuilder        = "Level 2: Builder"
	labelOperator       = "Level 3: Operator"
	labelProOptimizer   = "Level 4: Pro Optimizer"
)

// LevelOf maps a score to its achievement level. Scores outside [0,100]
// clamp to the nearest bound.
func LevelOf(score int) Level {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	switch {
	case score <= gettingStartedMax:
		next := gettingStartedMax + 1 - score
		return Level{
			Rank:         1,
			Label:        labelGettingStarted,
			Description:  "Every journey begins with a step.",
			PointsToNext: &next,
			NextLabel:    labelBuilder,
		}
	case score <= builderMax:
		next := builderMax + 1 - score
		return Level{
			Rank:         2,
			Label:        labelBuilder,
			Description:  "You're building a strong foundation!",
			PointsToNext: &next,
			NextLabel:    labelOperator,
		}
	case score <= operatorMax:
		next := operatorMax + 1 - score
		return Level{
			Rank:         3,
			Label:        labelOperator,
			Description:  "You're running a solid operation!",
			PointsToNext: &next,
			NextLabel:    labelProOptimizer,
		}
	default:
		return Level{
			Rank:        4,
			Label:       labelProOptimizer,
			Description: "You're among the best—keep optimizing!",
		}
	}
}

// LevelGuide returns the walkthrough copy for all four tiers in order.
func LevelGuide() []Level {
	return []Level{
		{Rank: 1, Label: labelGettingStarted, Description: "You've taken the first step! At this level, your business is just beginning to organize things."},
		{Rank: 2, Label: labelBuilder, Description: "Now you're building a stronger system. You've started using tools to keep your work in place."},
		{Rank: 3, Label: labelOperator, Description: "You've got things running smoothly! Work is faster and more clear."},
		{Rank: 4, Label: labelProOptimizer, Description: "You're a pro now! Everything is organized, fast, and smart. You make better decisions because your data is clean."},
	}
}
