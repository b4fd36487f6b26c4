package fitindex

import "time"

// Subject defaults used when the caller cannot supply them.
const (
	DefaultAge      = 25
	DefaultWeightKg = 70.0
	DefaultGender   = "male"
)

// Workout is one completed exercise session, immutable once recorded.
// Calories and heart rate are optional; zero means "not reported".
type Workout struct {
	ID              int       `json:"id"`
	UserID          string    `json:"userId"`
	Type            string    `json:"workoutType"`
	DurationMinutes float64   `json:"durationMinutes"`
	Calories        float64   `json:"caloriesBurned"`
	HeartRateAvg    int       `json:"heartRateAvg,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Subject holds the attributes of the person behind the workouts,
// used only to estimate heart rate zones and calorie targets.
type Subject struct {
	Age      int     `json:"age"`
	WeightKg float64 `json:"weightKg"`
	Gender   string  `json:"gender"`
}

func (s Subject) withDefaults() Subject {
	if s.Age <= 0 {
		s.Age = DefaultAge
	}
	if s.WeightKg <= 0 {
		s.WeightKg = DefaultWeightKg
	}
	if s.Gender == "" {
		s.Gender = DefaultGender
	}
	return s
}
