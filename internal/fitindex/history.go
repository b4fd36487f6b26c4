package fitindex

import (
	"sort"
	"time"
)

const (
	// MaxHistoryDays is the default snapshot retention window.
	MaxHistoryDays = 90

	// trendWindowDays bounds how far back in the snapshot history
	// the trend classification looks.
	trendWindowDays = 14
	// trendMinSnapshots is the minimum number of history points
	// required to classify a trend at all.
	trendMinSnapshots = 3
	// trendThreshold is the score-mean delta beyond which the trend
	// stops being "stable".
	trendThreshold = 5.0
)

// normalizeHistory collapses a snapshot history to at most one entry per
// calendar day (latest wins), drops entries older than the retention
// window, and returns the result ordered oldest to newest.
func normalizeHistory(now time.Time, history []Snapshot, retentionDays int) []Snapshot {
	cutoff := now.AddDate(0, 0, -retentionDays)

	day2snapshot := make(map[string]Snapshot)
	for _, s := range history {
		if s.CreatedAt.Before(cutoff) {
			continue
		}
		day := dayKey(s.CreatedAt)
		if existing, ok := day2snapshot[day]; ok && existing.CreatedAt.After(s.CreatedAt) {
			continue
		}
		day2snapshot[day] = s
	}

	normalized := make([]Snapshot, 0, len(day2snapshot))
	for _, s := range day2snapshot {
		normalized = append(normalized, s)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].CreatedAt.Before(normalized[j].CreatedAt)
	})

	return normalized
}

// snapshotsSince filters a history (assumed ordered oldest to newest)
// down to the entries at or after the cutoff.
func snapshotsSince(cutoff time.Time, history []Snapshot) []Snapshot {
	var recent []Snapshot
	for _, s := range history {
		if !s.CreatedAt.Before(cutoff) {
			recent = append(recent, s)
		}
	}
	return recent
}

// trendForHistory splits the last two weeks of snapshots into an older
// and a newer half (by count) and compares the mean scores. Fewer than
// three points is always "stable".
func trendForHistory(now time.Time, history []Snapshot) Trend {
	recent := snapshotsSince(now.AddDate(0, 0, -trendWindowDays), history)
	if len(recent) < trendMinSnapshots {
		return TrendStable
	}

	half := len(recent) / 2
	oldMean := meanScore(recent[:half])
	newMean := meanScore(recent[half:])

	return trendForDelta(newMean - oldMean)
}

func trendForDelta(delta float64) Trend {
	switch {
	case delta > trendThreshold:
		return TrendImproving
	case delta < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanScore(snapshots []Snapshot) float64 {
	if len(snapshots) == 0 {
		return 0
	}
	var sum float64
	for _, s := range snapshots {
		sum += float64(s.Score)
	}
	return sum / float64(len(snapshots))
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
