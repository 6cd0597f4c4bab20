package services

import (
	"context"
	"testing"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	catalog, db := newTestCatalog(t)
	es := NewEnrollmentService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	enrollment, err := es.Enroll(ctx, "u1", "python-basics")
	require.NoError(t, err)
	assert.Equal(t, float64(0), enrollment.Progress)
	assert.Equal(t, 1, enrollment.CurrentLesson)
	assert.False(t, enrollment.Completed)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	enrolled, err := es.IsEnrolled(ctx, "u1", "python-basics")
	require.NoError(t, err)
	assert.True(t, enrolled)

	enrolled, err = es.IsEnrolled(ctx, "u2", "python-basics")
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	catalog, db := newTestCatalog(t)
	es := NewEnrollmentService(db, testLogger(), catalog)

	_, err := es.Enroll(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReEnrollResetsProgress(t *testing.T) {
	catalog, db := newTestCatalog(t)
	es := NewEnrollmentService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	_, err := es.Enroll(ctx, "u1", "python-basics")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", "u1", "python-basics").
		Update("progress", 42.0).Error)

	enrollment, err := es.Enroll(ctx, "u1", "python-basics")
	require.NoError(t, err)
	assert.Equal(t, float64(0), enrollment.Progress)
}

func TestEnrolledCoursesSkipsMissingCatalogEntries(t *testing.T) {
	catalog, db := newTestCatalog(t)
	es := NewEnrollmentService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	_, err := es.Enroll(ctx, "u1", "python-basics")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Enrollment{UserID: "u1", CourseID: "gone"}).Error)

	courses, err := es.EnrolledCourses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "python-basics", courses[0].ID)
}

func TestSetCurrentLesson(t *testing.T) {
	catalog, db := newTestCatalog(t)
	es := NewEnrollmentService(db, testLogger(), catalog)
	ctx := context.Background()
	seedCourse(t, db, "python-basics", 24)

	_, err := es.Enroll(ctx, "u1", "python-basics")
	require.NoError(t, err)

	require.NoError(t, es.SetCurrentLesson(ctx, "u1", "python-basics", 100, 24))

	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "user_id = ? AND course_id = ?", "u1", "python-basics").Error)
	assert.Equal(t, float64(100), enrollment.Progress)
	assert.Equal(t, 24, enrollment.CurrentLesson)
	assert.True(t, enrollment.Completed)

	assert.ErrorIs(t, es.SetCurrentLesson(ctx, "u1", "missing", 10, 2), ErrNotFound)
}
