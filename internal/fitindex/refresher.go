package fitindex

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// UsersLister names the users whose snapshots the refresher recomputes.
type UsersLister interface {
	DistinctUsers(ctx context.Context) ([]string, error)
}

// Refresher periodically recomputes the index for every known user, so
// snapshot histories keep moving even on days without new workouts.
type Refresher struct {
	engine   *Engine
	users    UsersLister
	interval time.Duration
}

func NewRefresher(engine *Engine, users UsersLister, interval time.Duration) *Refresher {
	return &Refresher{
		engine:   engine,
		users:    users,
		interval: interval,
	}
}

// Run blocks until the context is canceled, refreshing all users once per
// interval. Per-user failures are logged and skipped.
func (r *Refresher) Run(ctx context.Context) {
	log.Debugf("snapshot refresher started, interval %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("snapshot refresher stopping")
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	users, err := r.users.DistinctUsers(ctx)
	if err != nil {
		log.Errorf("snapshot refresher: list users: %s", err)
		return
	}

	for _, userID := range users {
		// subject attributes are not stored with the workouts,
		// the engine falls back to its documented defaults
		if _, err := r.engine.ComputeIndex(ctx, userID, Subject{}); err != nil {
			log.Errorf("snapshot refresher: compute index for %s: %s", userID, err)
		}
	}

	log.Debugf("snapshot refresher: refreshed %d users", len(users))
}
