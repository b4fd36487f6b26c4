package history

import (
	"context"

	"github.com/mkovacev/fitindex/internal/fitindex"
)

// MemoryStore holds snapshot histories in memory. Used by the one-shot
// command and as a test double for the engine.
type MemoryStore struct {
	histories map[string][]fitindex.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		histories: make(map[string][]fitindex.Snapshot),
	}
}

func (s *MemoryStore) Read(_ context.Context, userID string) ([]fitindex.Snapshot, error) {
	history := s.histories[userID]
	out := make([]fitindex.Snapshot, len(history))
	copy(out, history)
	return out, nil
}

func (s *MemoryStore) Write(_ context.Context, userID string, snapshots []fitindex.Snapshot) error {
	stored := make([]fitindex.Snapshot, len(snapshots))
	copy(stored, snapshots)
	s.histories[userID] = stored
	return nil
}
