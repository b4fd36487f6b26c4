package fitindex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkovacev/fitindex/internal/telemetry/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workoutsProviderStub struct {
	workoutsPerUser map[string][]Workout
	usersErr        error
}

func (s *workoutsProviderStub) ListAll(_ context.Context, userID string) ([]Workout, error) {
	return s.workoutsPerUser[userID], nil
}

func (s *workoutsProviderStub) DistinctUsers(_ context.Context) ([]string, error) {
	if s.usersErr != nil {
		return nil, s.usersErr
	}
	users := make([]string, 0, len(s.workoutsPerUser))
	for userID := range s.workoutsPerUser {
		users = append(users, userID)
	}
	return users, nil
}

type historyStoreStub struct {
	histories map[string][]Snapshot
}

func newHistoryStoreStub() *historyStoreStub {
	return &historyStoreStub{histories: make(map[string][]Snapshot)}
}

func (s *historyStoreStub) Read(_ context.Context, userID string) ([]Snapshot, error) {
	return s.histories[userID], nil
}

func (s *historyStoreStub) Write(_ context.Context, userID string, snapshots []Snapshot) error {
	s.histories[userID] = snapshots
	return nil
}

func TestRefresher_RefreshAll(t *testing.T) {
	provider := &workoutsProviderStub{
		workoutsPerUser: map[string][]Workout{
			"user-a": {
				{Type: "running", DurationMinutes: 45, Calories: 400, CreatedAt: testNow.AddDate(0, 0, -1)},
				{Type: "cycling", DurationMinutes: 60, Calories: 500, CreatedAt: testNow.AddDate(0, 0, -3)},
			},
			"user-b": nil,
		},
	}
	store := newHistoryStoreStub()

	engine := NewEngine(provider, store, metrics.NewTestManager())
	engine.NowFunc = func() time.Time { return testNow }

	refresher := NewRefresher(engine, provider, time.Minute)
	refresher.refreshAll(context.Background())

	require.Len(t, store.histories["user-a"], 1)
	assert.Greater(t, store.histories["user-a"][0].Score, 0)

	// user without workouts still gets the zero state snapshot
	require.Len(t, store.histories["user-b"], 1)
	assert.Equal(t, 0, store.histories["user-b"][0].Score)
	assert.Equal(t, LevelGettingStarted, store.histories["user-b"][0].Level)
}

func TestRefresher_RefreshAll_ListUsersError(t *testing.T) {
	provider := &workoutsProviderStub{usersErr: errors.New("db gone")}
	store := newHistoryStoreStub()

	engine := NewEngine(provider, store, metrics.NewTestManager())
	engine.NowFunc = func() time.Time { return testNow }

	refresher := NewRefresher(engine, provider, time.Minute)
	refresher.refreshAll(context.Background())

	assert.Empty(t, store.histories)
}

func TestRefresher_RunStopsOnContextCancel(t *testing.T) {
	provider := &workoutsProviderStub{}
	store := newHistoryStoreStub()

	engine := NewEngine(provider, store, metrics.NewTestManager())
	refresher := NewRefresher(engine, provider, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop on context cancel")
	}
}
