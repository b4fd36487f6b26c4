package fitindex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotAt(createdAt time.Time, score int) Snapshot {
	return Snapshot{
		Score:     score,
		Level:     LevelForScore(score),
		CreatedAt: createdAt,
	}
}

func TestNormalizeHistory_DedupePerDay(t *testing.T) {
	morning := snapshotAt(testNow.Add(-5*time.Hour), 50)
	evening := snapshotAt(testNow, 60)
	yesterday := snapshotAt(testNow.AddDate(0, 0, -1), 40)

	normalized := normalizeHistory(testNow, []Snapshot{yesterday, morning, evening}, MaxHistoryDays)
	require.Len(t, normalized, 2)
	assert.Equal(t, yesterday, normalized[0])
	// the later snapshot of the day wins
	assert.Equal(t, evening, normalized[1])

	// insertion order within a day does not matter
	normalized = normalizeHistory(testNow, []Snapshot{evening, morning, yesterday}, MaxHistoryDays)
	require.Len(t, normalized, 2)
	assert.Equal(t, evening, normalized[1])
}

func TestNormalizeHistory_PruneBeyondRetention(t *testing.T) {
	ancient := snapshotAt(testNow.AddDate(0, 0, -(MaxHistoryDays + 1)), 70)
	recent := snapshotAt(testNow.AddDate(0, 0, -5), 55)
	today := snapshotAt(testNow, 60)

	normalized := normalizeHistory(testNow, []Snapshot{ancient, recent, today}, MaxHistoryDays)
	require.Len(t, normalized, 2)
	assert.Equal(t, recent, normalized[0])
	assert.Equal(t, today, normalized[1])
}

func TestNormalizeHistory_OrderedOldestToNewest(t *testing.T) {
	s1 := snapshotAt(testNow.AddDate(0, 0, -10), 30)
	s2 := snapshotAt(testNow.AddDate(0, 0, -5), 40)
	s3 := snapshotAt(testNow.AddDate(0, 0, -1), 50)

	normalized := normalizeHistory(testNow, []Snapshot{s3, s1, s2}, MaxHistoryDays)
	require.Len(t, normalized, 3)
	assert.Equal(t, []Snapshot{s1, s2, s3}, normalized)
}

func TestTrendForHistory_InsufficientData(t *testing.T) {
	assert.Equal(t, TrendStable, trendForHistory(testNow, nil))

	history := []Snapshot{
		snapshotAt(testNow.AddDate(0, 0, -2), 10),
		snapshotAt(testNow.AddDate(0, 0, -1), 90),
	}
	// two points are never enough, no matter how far apart the scores
	assert.Equal(t, TrendStable, trendForHistory(testNow, history))
}

func TestTrendForHistory(t *testing.T) {
	historyWithScores := func(scores ...int) []Snapshot {
		history := make([]Snapshot, 0, len(scores))
		for i, score := range scores {
			history = append(history, snapshotAt(testNow.AddDate(0, 0, -(len(scores)-i)), score))
		}
		return history
	}

	// newer half mean 60 vs older half mean 50
	assert.Equal(t, TrendImproving, trendForHistory(testNow, historyWithScores(50, 50, 60, 60)))
	assert.Equal(t, TrendDeclining, trendForHistory(testNow, historyWithScores(60, 60, 50, 50)))
	// a delta of exactly 5 is still stable
	assert.Equal(t, TrendStable, trendForHistory(testNow, historyWithScores(50, 50, 55, 55)))
	assert.Equal(t, TrendStable, trendForHistory(testNow, historyWithScores(52, 50, 51, 53)))

	// odd number of points: older half gets the smaller share
	assert.Equal(t, TrendImproving, trendForHistory(testNow, historyWithScores(40, 50, 52)))
}

func TestTrendForHistory_IgnoresOldSnapshots(t *testing.T) {
	history := []Snapshot{
		snapshotAt(testNow.AddDate(0, 0, -60), 5),
		snapshotAt(testNow.AddDate(0, 0, -50), 5),
		snapshotAt(testNow.AddDate(0, 0, -2), 50),
		snapshotAt(testNow.AddDate(0, 0, -1), 52),
	}
	// only two points fall inside the 14 day window
	assert.Equal(t, TrendStable, trendForHistory(testNow, history))
}
