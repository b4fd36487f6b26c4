package fitindex

import (
	"context"
	"strings"

	"github.com/mkovacev/fitindex/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AnalyticsSummary aggregates a user's workout history for display:
// lifetime totals, a per-type breakdown and the most recent sessions.
type AnalyticsSummary struct {
	TotalWorkouts        int            `json:"totalWorkouts"`
	TotalDurationMinutes float64        `json:"totalDurationMinutes"`
	TotalCalories        float64        `json:"totalCalories"`
	WorkoutTypeCounts    map[string]int `json:"workoutTypeCounts"`
	RecentWorkouts       []Workout      `json:"recentWorkouts"`
	WeeklyAvgCalories    float64        `json:"weeklyAvgCalories"`
	MonthlyWorkoutCount  int            `json:"monthlyWorkoutCount"`
}

const recentWorkoutsShown = 5

// Analytics builds the workout summary for a user.
func (e *Engine) Analytics(ctx context.Context, userID string) (_ *AnalyticsSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.fitindex.analytics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	workouts, err := e.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := e.NowFunc()
	summary := &AnalyticsSummary{
		TotalWorkouts:     len(workouts),
		WorkoutTypeCounts: make(map[string]int),
	}

	weekCutoff := now.AddDate(0, 0, -7)
	monthCutoff := now.AddDate(0, 0, -consistencyWindowDays)
	var weekCalories float64
	var weekCount int
	for _, w := range workouts {
		summary.TotalDurationMinutes += w.DurationMinutes
		summary.TotalCalories += w.Calories
		summary.WorkoutTypeCounts[strings.ToLower(w.Type)]++

		if !w.CreatedAt.Before(weekCutoff) {
			weekCalories += w.Calories
			weekCount++
		}
		if !w.CreatedAt.Before(monthCutoff) {
			summary.MonthlyWorkoutCount++
		}
	}
	if weekCount > 0 {
		summary.WeeklyAvgCalories = weekCalories / float64(weekCount)
	}

	summary.RecentWorkouts = recentFirst(workouts, recentWorkoutsShown)

	return summary, nil
}

// recentFirst returns up to n workouts, newest first, assuming the input
// is ordered oldest to newest.
func recentFirst(workouts []Workout, n int) []Workout {
	recent := make([]Workout, 0, n)
	for i := len(workouts) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, workouts[i])
	}
	return recent
}
