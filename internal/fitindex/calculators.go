package fitindex

import (
	"math"
	"strings"
	"time"
)

const (
	// consistencyWindowDays is the trailing period scored for frequency and variety.
	consistencyWindowDays = 30
	// recentWorkoutCount is how many of the latest workouts feed
	// the performance and intensity calculators.
	recentWorkoutCount = 8

	// neutral fallbacks when a sub-score cannot be derived
	performanceNeutralScore = 45
	intensityNeutralScore   = 40
)

// consistencyScore rewards workout frequency over the trailing 30 days.
// Near-daily activity is not required for a top score, and a floor keeps
// brand-new users off zero.
func consistencyScore(now time.Time, workouts []Workout) int {
	count := len(workoutsSince(now.AddDate(0, 0, -consistencyWindowDays), workouts))

	if count < 3 {
		return clampScore(int(math.Max(15, float64(count)/3*15)), 0, 100)
	}

	score := float64(count) / 25 * 85
	switch {
	case count >= 20:
		score += 15
	case count >= 15:
		score += 10
	case count >= 10:
		score += 5
	}

	return clampScore(int(math.Round(score)), 0, 100)
}

// performanceScore compares actual calorie burn against the MET-estimated
// target over the most recent workouts. Never reports the extremes, so the
// caller cannot show a misleading 0 or 100.
func performanceScore(workouts []Workout, subject Subject) int {
	recent := lastN(workouts, recentWorkoutCount)

	var actualSum, targetSum float64
	for _, w := range recent {
		actualSum += w.Calories
		targetSum += TargetCalories(w, subject)
	}
	if targetSum == 0 {
		return performanceNeutralScore
	}

	ratio := actualSum / targetSum
	score := ratio * 75
	switch {
	case ratio > 1.2:
		score += 15
	case ratio > 1.0:
		score += 8
	}
	if len(workouts) >= 10 {
		score += 5
	}

	return clampScore(int(math.Round(score)), 25, 95)
}

// varietyScore counts distinct workout types in the trailing 30 days,
// case-insensitive.
func varietyScore(now time.Time, workouts []Workout) int {
	types := make(map[string]struct{})
	for _, w := range workoutsSince(now.AddDate(0, 0, -consistencyWindowDays), workouts) {
		types[strings.ToLower(w.Type)] = struct{}{}
	}

	var score int
	switch uniqueCount := len(types); {
	case uniqueCount == 0:
		score = 0
	case uniqueCount == 1:
		score = 20
	case uniqueCount == 2:
		score = 35
	case uniqueCount <= 4:
		score = 60 + (uniqueCount-3)*15
	default:
		score = 90 + (uniqueCount-5)*2
	}

	return clampScore(score, 0, 100)
}

// intensityScore grades the heart-rate-zone distribution of the most
// recent workouts, with a bonus for repeatedly hitting 75%+ of max HR.
func intensityScore(workouts []Workout, subject Subject) int {
	subject = subject.withDefaults()
	maxHR := maxHeartRate(subject)

	var zoneSum float64
	var scored, highIntensity int
	for _, w := range lastN(workouts, recentWorkoutCount) {
		heartRate, ok := heartRateFor(w, subject)
		if !ok {
			continue
		}

		hrPercentage := heartRate / maxHR * 100
		zoneScore := zoneScoreFor(hrPercentage)
		switch {
		case hrPercentage >= 80:
			zoneScore += 5
		case hrPercentage >= 75:
			zoneScore += 2
		}
		if hrPercentage >= 75 {
			highIntensity++
		}

		zoneSum += float64(zoneScore)
		scored++
	}
	if scored == 0 {
		return intensityNeutralScore
	}

	score := zoneSum / float64(scored)
	switch {
	case highIntensity >= 3:
		score += 8
	case highIntensity >= 2:
		score += 4
	}

	return clampScore(int(math.Round(score)), 25, 95)
}

func zoneScoreFor(hrPercentage float64) int {
	switch {
	case hrPercentage < 50:
		return 10
	case hrPercentage < 60:
		return 20
	case hrPercentage < 70:
		return 40
	case hrPercentage < 80:
		return 70
	case hrPercentage < 90:
		return 90
	default:
		return 100
	}
}

func workoutsSince(cutoff time.Time, workouts []Workout) []Workout {
	var recent []Workout
	for _, w := range workouts {
		if !w.CreatedAt.Before(cutoff) {
			recent = append(recent, w)
		}
	}
	return recent
}

// lastN returns the n most recent workouts, assuming the input is
// ordered oldest to newest.
func lastN(workouts []Workout, n int) []Workout {
	if len(workouts) <= n {
		return workouts
	}
	return workouts[len(workouts)-n:]
}

func clampScore(score, minScore, maxScore int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
