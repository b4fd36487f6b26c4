package fitindex

import "strings"

// defaultMET is used for workout types missing from the MET table.
const defaultMET = 7.0

// metValues maps a workout type to its Metabolic Equivalent of Task,
// the ratio of workout energy expenditure to resting metabolic rate.
var metValues = map[string]float64{
	"running":       11.0,
	"cycling":       8.0,
	"swimming":      10.0,
	"weightlifting": 6.0,
	"boxing":        12.0,
	"walking":       3.8,
	"yoga":          2.5,
}

func metFor(workoutType string) float64 {
	if met, ok := metValues[strings.ToLower(workoutType)]; ok {
		return met
	}
	return defaultMET
}

// TargetCalories estimates the expected calorie burn for a single workout,
// from the activity MET, the subject weight and the workout duration,
// adjusted for age bracket and gender.
func TargetCalories(w Workout, subject Subject) float64 {
	subject = subject.withDefaults()

	target := metFor(w.Type) * subject.WeightKg * (w.DurationMinutes / 60)

	switch {
	case subject.Age < 20:
		target *= 1.1
	case subject.Age > 65:
		target *= 0.8
	case subject.Age > 50:
		target *= 0.9
	}

	if strings.EqualFold(subject.Gender, "male") {
		target *= 1.1
	}

	return target
}

// intensityFraction gives the fraction of max heart rate a workout type
// is typically performed at, used when no heart rate was reported.
// Running scales with duration: longer runs are assumed to push higher
// into the aerobic range, capped at one hour.
func intensityFraction(w Workout) float64 {
	switch strings.ToLower(w.Type) {
	case "running":
		durationHours := w.DurationMinutes / 60
		if durationHours > 1 {
			durationHours = 1
		}
		return 0.75 + 0.10*durationHours
	case "cycling":
		return 0.70
	case "swimming":
		return 0.80
	case "weightlifting":
		return 0.65
	case "boxing":
		return 0.85
	case "walking":
		return 0.55
	case "yoga":
		return 0.45
	default:
		return 0.70
	}
}

// heartRateFor returns the heart rate to use for zone scoring,
// preferring the reported average, falling back to an estimate from
// the age-derived max heart rate and the activity intensity fraction.
// The second return value is false when no rate can be derived.
func heartRateFor(w Workout, subject Subject) (float64, bool) {
	if w.HeartRateAvg > 0 {
		return float64(w.HeartRateAvg), true
	}
	if w.DurationMinutes <= 0 {
		return 0, false
	}
	maxHR := maxHeartRate(subject)
	return maxHR * intensityFraction(w), true
}

// maxHeartRate is the age-estimated maximum heart rate (220 - age).
func maxHeartRate(subject Subject) float64 {
	return 220 - float64(subject.withDefaults().Age)
}
