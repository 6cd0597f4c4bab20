package services

import (
	"context"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"
)

// StreakService derives the consecutive-day activity streak from the
// ledger's last-access timestamps.
type StreakService struct {
	DB       *gorm.DB
	Log      *log.Logger
	Progress *ProgressService
}

func NewStreakService(db *gorm.DB, logger *log.Logger, progress *ProgressService) *StreakService {
	return &StreakService{DB: db, Log: logger, Progress: progress}
}

// ComputeStreak counts consecutive calendar days of activity ending today
// or yesterday. Zero when the most recent activity is older than that.
func (ss *StreakService) ComputeStreak(ctx context.Context, userID string) (int, error) {
	records, err := ss.Progress.Records(ctx, userID)
	if err != nil {
		return 0, err
	}

	days := make([]time.Time, 0, len(records))
	for _, record := range records {
		days = append(days, record.LastAccessedAt)
	}

	return streakFromDays(days, time.Now()), nil
}

// streakFromDays walks distinct activity days from the most recent
// backwards, counting entries whose distance from today matches their walk
// index. The first entry may be today or yesterday; the first gap stops the
// count.
func streakFromDays(activity []time.Time, now time.Time) int {
	seen := make(map[time.Time]bool, len(activity))
	days := make([]time.Time, 0, len(activity))
	for _, t := range activity {
		day := truncateToDay(t)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := truncateToDay(now)
	if daysBetween(days[0], today) > 1 {
		return 0
	}

	streak := 0
	for i, day := range days {
		diff := daysBetween(day, today)
		if diff == i || (i == 0 && diff <= 1) {
			streak++
		} else {
			break
		}
	}
	return streak
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(day, today time.Time) int {
	return int(today.Sub(day) / (24 * time.Hour))
}
