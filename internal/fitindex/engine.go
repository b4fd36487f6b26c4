package fitindex

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/mkovacev/fitindex/internal/telemetry/metrics"
	"github.com/mkovacev/fitindex/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=fitindex_test

// WorkoutsProvider supplies the workout history for a user,
// ordered oldest to newest. Read-only from the engine's side.
type WorkoutsProvider interface {
	ListAll(ctx context.Context, userID string) ([]Workout, error)
}

// HistoryStore persists snapshot histories per user. The engine owns the
// dedupe and prune policy and always writes the full normalized history.
type HistoryStore interface {
	Read(ctx context.Context, userID string) ([]Snapshot, error)
	Write(ctx context.Context, userID string, history []Snapshot) error
}

// Engine computes the composite performance index from a workout history
// and keeps a dated snapshot history per user.
type Engine struct {
	workouts WorkoutsProvider
	history  HistoryStore
	metrics  *metrics.Manager

	// RetentionDays is how long snapshots are kept; older entries are
	// pruned on every write.
	RetentionDays int
	// NowFunc can be swapped out for testing.
	NowFunc func() time.Time
}

func NewEngine(
	workouts WorkoutsProvider,
	history HistoryStore,
	metricsManager *metrics.Manager,
) *Engine {
	return &Engine{
		workouts:      workouts,
		history:       history,
		metrics:       metricsManager,
		RetentionDays: MaxHistoryDays,
		NowFunc:       time.Now,
	}
}

// Score computes a snapshot from the given workout history without
// touching any store. Deterministic for a fixed history, subject and
// clock; the trend is classified against the provided snapshot history.
func (e *Engine) Score(workouts []Workout, subject Subject, history []Snapshot) Snapshot {
	now := e.NowFunc()

	if len(workouts) == 0 {
		return NewDefaultSnapshot(now)
	}

	sorted := make([]Workout, len(workouts))
	copy(sorted, workouts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	components := Components{
		Consistency: consistencyScore(now, sorted),
		Performance: performanceScore(sorted, subject),
		Variety:     varietyScore(now, sorted),
		Intensity:   intensityScore(sorted, subject),
	}

	weighted := weightConsistency*float64(components.Consistency) +
		weightPerformance*float64(components.Performance) +
		weightVariety*float64(components.Variety) +
		weightIntensity*float64(components.Intensity)
	score := clampScore(int(math.Round(weighted)), 0, 100)

	snapshot := Snapshot{
		Score:        score,
		Level:        LevelForScore(score),
		Components:   components,
		CreatedAt:    now,
		WorkoutCount: len(sorted),
	}
	snapshot.Trend = trendForHistory(now, append(history, snapshot))

	return snapshot
}

// ComputeIndex recomputes the index for a user from their full workout
// history and records the result as a dated snapshot (append, dedupe to
// one per day, prune beyond retention). A missing or empty history is a
// valid new-user state, not an error.
func (e *Engine) ComputeIndex(
	ctx context.Context,
	userID string,
	subject Subject,
) (_ Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.fitindex.computeIndex")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	startedAt := e.NowFunc()

	workouts, err := e.workouts.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("compute index for %s: list workouts: %s", userID, err)
		return Snapshot{}, err
	}

	history, err := e.history.Read(ctx, userID)
	if err != nil {
		log.Errorf("compute index for %s: read history: %s", userID, err)
		return Snapshot{}, err
	}

	snapshot := e.Score(workouts, subject, history)

	normalized := normalizeHistory(
		snapshot.CreatedAt,
		append(history, snapshot),
		e.RetentionDays,
	)
	if err := e.history.Write(ctx, userID, normalized); err != nil {
		log.Errorf("compute index for %s: write history: %s", userID, err)
		return Snapshot{}, err
	}

	e.metrics.CounterSnapshotWrites.Inc()
	e.metrics.CounterIndexComputed.Inc()
	e.metrics.HistComputeDuration.Observe(time.Since(startedAt).Seconds())

	return snapshot, nil
}

// GetHistory returns the snapshots of the last `days` days,
// ordered oldest to newest.
func (e *Engine) GetHistory(
	ctx context.Context,
	userID string,
	days int,
) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.fitindex.getHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := e.history.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	return snapshotsSince(e.NowFunc().AddDate(0, 0, -days), history), nil
}

// Comparison is the result of comparing the current snapshot against the
// latest one preceding the lookback window.
type Comparison struct {
	Current       Snapshot `json:"current"`
	Previous      Snapshot `json:"previous"`
	Difference    int      `json:"difference"`
	PercentChange float64  `json:"percentChange"`
	Trend         Trend    `json:"trend"`
}

// CompareWithPrevious compares the latest snapshot with the newest one
// strictly older than `days` days. Returns nil (and no error) when the
// history is too short to compare.
func (e *Engine) CompareWithPrevious(
	ctx context.Context,
	userID string,
	days int,
) (_ *Comparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.fitindex.compareWithPrevious")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := e.history.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return nil, nil
	}

	cutoff := e.NowFunc().AddDate(0, 0, -days)
	var previous *Snapshot
	for i := range history {
		if history[i].CreatedAt.Before(cutoff) {
			previous = &history[i]
		}
	}
	if previous == nil {
		return nil, nil
	}

	current := history[len(history)-1]
	difference := current.Score - previous.Score

	var percentChange float64
	if previous.Score != 0 {
		percentChange = float64(difference) / float64(previous.Score) * 100
	}

	return &Comparison{
		Current:       current,
		Previous:      *previous,
		Difference:    difference,
		PercentChange: percentChange,
		Trend:         trendForDelta(float64(difference)),
	}, nil
}
