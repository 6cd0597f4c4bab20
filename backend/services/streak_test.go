package services

import (
	"context"
	"testing"
	"time"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(now time.Time, daysAgo int) time.Time {
	return now.AddDate(0, 0, -daysAgo)
}

func TestStreakFromDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		activity []time.Time
		want     int
	}{
		{"no activity", nil, 0},
		{"three consecutive days ending today", []time.Time{day(now, 0), day(now, 1), day(now, 2)}, 3},
		{"single day three days ago", []time.Time{day(now, 3)}, 0},
		{"today only", []time.Time{day(now, 0)}, 1},
		{"yesterday only", []time.Time{day(now, 1)}, 1},
		{"gap after yesterday breaks the chain", []time.Time{day(now, 1), day(now, 2)}, 1},
		{"gap in the middle stops the count", []time.Time{day(now, 0), day(now, 1), day(now, 3)}, 2},
		{"duplicate same-day activity counted once", []time.Time{day(now, 0), now.Add(-2 * time.Hour), day(now, 1)}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, streakFromDays(tc.activity, now))
		})
	}
}

func TestComputeStreakFromLedger(t *testing.T) {
	catalog, db := newTestCatalog(t)
	progress := NewProgressService(db, testLogger(), catalog)
	streak := NewStreakService(db, testLogger(), progress)
	ctx := context.Background()

	now := time.Now()
	for i, courseID := range []string{"c1", "c2", "c3"} {
		require.NoError(t, db.Create(&models.ProgressRecord{
			UserID:         "u1",
			CourseID:       courseID,
			LastAccessedAt: now.AddDate(0, 0, -i),
		}).Error)
	}

	got, err := streak.ComputeStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = streak.ComputeStreak(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
