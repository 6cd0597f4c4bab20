package services

import (
	"context"
	"errors"
	"log"
	"time"

	"project/backend/models"

	"gorm.io/gorm"
)

// EnrollmentService records course enrollments and answers membership
// queries.
type EnrollmentService struct {
	DB      *gorm.DB
	Log     *log.Logger
	Catalog *CatalogService
}

func NewEnrollmentService(db *gorm.DB, logger *log.Logger, catalog *CatalogService) *EnrollmentService {
	return &EnrollmentService{DB: db, Log: logger, Catalog: catalog}
}

// Enroll registers the user in a course with zero progress. Re-enrolling
// overwrites the prior record and resets progress.
func (es *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	if _, err := es.Catalog.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:        userID,
		CourseID:      courseID,
		EnrolledAt:    time.Now(),
		Progress:      0,
		CurrentLesson: 1,
		Completed:     false,
	}
	if err := es.DB.WithContext(ctx).Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (es *EnrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	var count int64
	err := es.DB.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (es *EnrollmentService) ListEnrollments(ctx context.Context, userID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := es.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&enrollments).Error
	return enrollments, err
}

// EnrolledCourses resolves the user's enrollments to catalog entries.
// Courses that have disappeared from the catalog are skipped.
func (es *EnrollmentService) EnrolledCourses(ctx context.Context, userID string) ([]models.Course, error) {
	enrollments, err := es.ListEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := es.Catalog.GetCourse(ctx, enrollment.CourseID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

// SetCurrentLesson moves the enrollment's current-lesson pointer and
// progress, keeping the completed flag consistent.
func (es *EnrollmentService) SetCurrentLesson(ctx context.Context, userID, courseID string, progress float64, currentLesson int) error {
	result := es.DB.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"progress":       progress,
			"current_lesson": currentLesson,
			"completed":      progress >= 100,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
