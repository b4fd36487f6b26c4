package fitindex

import "time"

type Level string

const (
	LevelEliteAthlete   Level = "Elite Athlete"
	LevelAdvanced       Level = "Advanced"
	LevelIntermediate   Level = "Intermediate"
	LevelDeveloping     Level = "Developing"
	LevelBeginner       Level = "Beginner"
	LevelGettingStarted Level = "Getting Started"
	LevelNewUser        Level = "New User"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Components are the four weighted sub-scores, each in [0, 100].
type Components struct {
	Consistency int `json:"consistency"`
	Performance int `json:"performance"`
	Variety     int `json:"variety"`
	Intensity   int `json:"intensity"`
}

// Snapshot is one computed performance index at a point in time.
type Snapshot struct {
	Score        int        `json:"score"`
	Level        Level      `json:"level"`
	Components   Components `json:"components"`
	Trend        Trend      `json:"trend"`
	CreatedAt    time.Time  `json:"createdAt"`
	WorkoutCount int        `json:"workoutCount"`
}

// component weights, must sum to 1.0
const (
	weightConsistency = 0.35
	weightPerformance = 0.35
	weightVariety     = 0.15
	weightIntensity   = 0.15
)

// LevelForScore maps an aggregate score to its performance tier.
// Bands are closed on both ends, evaluated highest first.
func LevelForScore(score int) Level {
	switch {
	case score >= 90:
		return LevelEliteAthlete
	case score >= 75:
		return LevelAdvanced
	case score >= 60:
		return LevelIntermediate
	case score >= 45:
		return LevelDeveloping
	case score >= 30:
		return LevelBeginner
	case score >= 15:
		return LevelGettingStarted
	default:
		return LevelNewUser
	}
}

// NewDefaultSnapshot is the zero-state snapshot returned for users
// with no (or unusable) workout history. Not an error state.
func NewDefaultSnapshot(createdAt time.Time) Snapshot {
	return Snapshot{
		Score:      0,
		Level:      LevelGettingStarted,
		Components: Components{},
		Trend:      TrendStable,
		CreatedAt:  createdAt,
	}
}
