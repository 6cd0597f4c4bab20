package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCompletionScenario(t *testing.T) {
	catalog, db := newTestCatalog(t)
	enrollments := NewEnrollmentService(db, testLogger(), catalog)
	progress := NewProgressService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	_, err := enrollments.Enroll(ctx, "u1", "python-basics")
	require.NoError(t, err)

	pct, err := progress.GetProgress(ctx, "u1", "python-basics")
	require.NoError(t, err)
	assert.Equal(t, float64(0), pct)

	for i := 1; i <= 12; i++ {
		_, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", fmt.Sprintf("lec-%d", i), true)
		require.NoError(t, err)
	}

	pct, err = progress.GetProgress(ctx, "u1", "python-basics")
	require.NoError(t, err)
	assert.Equal(t, float64(50), pct)

	for i := 13; i <= 24; i++ {
		_, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", fmt.Sprintf("lec-%d", i), true)
		require.NoError(t, err)
	}

	pct, err = progress.GetProgress(ctx, "u1", "python-basics")
	require.NoError(t, err)
	assert.Equal(t, float64(100), pct)

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "user_id = ? AND course_id = ?", "u1", "python-basics").Error)
	assert.Equal(t, float64(100), enrollment.Progress)
	assert.True(t, enrollment.Completed)
}

func TestMarkLectureCompleteIsIdempotent(t *testing.T) {
	catalog, db := newTestCatalog(t)
	progress := NewProgressService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	first, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", "lec-1", true)
	require.NoError(t, err)
	second, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", "lec-1", true)
	require.NoError(t, err)

	assert.Equal(t, first.CompletedLectures, second.CompletedLectures)
	assert.Equal(t, first.Progress, second.Progress)
	assert.Len(t, second.CompletedLectures, 1)
}

func TestUnmarkLecture(t *testing.T) {
	catalog, db := newTestCatalog(t)
	progress := NewProgressService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	_, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", "lec-1", true)
	require.NoError(t, err)

	record, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", "lec-1", false)
	require.NoError(t, err)
	assert.Empty(t, record.CompletedLectures)
	assert.Equal(t, float64(0), record.Progress)
}

func TestProgressUsesStoredStructureDenominator(t *testing.T) {
	catalog, db := newTestCatalog(t)
	progress := NewProgressService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "go-basics", 10)

	require.NoError(t, db.Create(&models.SubCourse{ID: "go-intro", CourseID: "go-basics", SequenceOrder: 1}).Error)
	require.NoError(t, db.Create(&models.Lecture{ID: "go-1", SubCourseID: "go-intro", CourseID: "go-basics", SequenceOrder: 1}).Error)
	require.NoError(t, db.Create(&models.Lecture{ID: "go-2", SubCourseID: "go-intro", CourseID: "go-basics", SequenceOrder: 2}).Error)

	record, err := progress.MarkLectureComplete(ctx, "u1", "go-basics", "go-1", true)
	require.NoError(t, err)
	assert.Equal(t, float64(50), record.Progress)
}

func TestConcurrentMarksAllLand(t *testing.T) {
	catalog, db := newTestCatalog(t)
	progress := NewProgressService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := progress.MarkLectureComplete(ctx, "u1", "python-basics", fmt.Sprintf("lec-%d", i), true)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	var record models.ProgressRecord
	require.NoError(t, db.First(&record, "user_id = ? AND course_id = ?", "u1", "python-basics").Error)
	assert.Len(t, record.CompletedLectures, 8)
}
