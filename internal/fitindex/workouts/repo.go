package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacev/fitindex/internal/fitindex"
	"github.com/mkovacev/fitindex/internal/telemetry/metrics"
	"github.com/mkovacev/fitindex/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// ListParams filter and paginate a user's workout sessions.
type ListParams struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Page   int
	Size   int
}

// Repo is the Postgres-backed workout history, reading and writing the
// workout_sessions table. It implements fitindex.WorkoutsProvider.
type Repo struct {
	db      *pgxpool.Pool
	metrics *metrics.Manager
}

func NewRepo(db *pgxpool.Pool, metricsManager *metrics.Manager) *Repo {
	return &Repo{
		db:      db,
		metrics: metricsManager,
	}
}

func (r *Repo) Add(ctx context.Context, workout fitindex.Workout) (_ *fitindex.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", workout.UserID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_sessions
				(user_id, workout_type, duration_minutes, calories_burned, heart_rate_avg, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		workout.UserID, workout.Type, workout.DurationMinutes,
		workout.Calories, workout.HeartRateAvg, workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))
	r.metrics.CounterWorkoutsAdded.Inc()

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *fitindex.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, workout_type, duration_minutes, calories_burned, heart_rate_avg, created_at
			FROM workout_sessions
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &found[0], nil
}

// ListAll returns the full workout history for a user,
// ordered oldest to newest.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []fitindex.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, workout_type, duration_minutes, calories_burned, heart_rate_avg, created_at
			FROM workout_sessions
			WHERE user_id = $1
			ORDER BY created_at ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}
	return found, nil
}

// List returns one page of a user's workouts, newest first, plus the
// total count for that user.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []fitindex.Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	total, err = r.Count(ctx, params)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, workout_type, duration_minutes, calories_burned, heart_rate_avg, created_at
			FROM workout_sessions
			WHERE user_id = $1
				AND ($2::timestamp IS NULL OR created_at >= $2)
				AND ($3::timestamp IS NULL OR created_at <= $3)
			ORDER BY created_at DESC
			LIMIT $4 OFFSET $5;`,
		params.UserID, params.From, params.To, limit, offset,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, -1, fmt.Errorf("rows2workouts: %w", err)
	}
	return found, total, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(
		ctx,
		`
			SELECT COUNT(*) FROM workout_sessions
			WHERE user_id = $1
				AND ($2::timestamp IS NULL OR created_at >= $2)
				AND ($3::timestamp IS NULL OR created_at <= $3);`,
		params.UserID, params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, fmt.Errorf("query row: %w", err)
	}
	return count, nil
}

// DistinctUsers lists the IDs of all users with at least one recorded
// workout, used by the periodic snapshot refresher.
func (r *Repo) DistinctUsers(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.distinctusers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT user_id FROM workout_sessions;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var users []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		users = append(users, userID)
	}

	return users, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]fitindex.Workout, error) {
	var found []fitindex.Workout
	for rows.Next() {
		var w fitindex.Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Type, &w.DurationMinutes,
			&w.Calories, &w.HeartRateAvg, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		found = append(found, w)
	}
	return found, nil
}
