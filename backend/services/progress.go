package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"project/backend/models"

	"gorm.io/gorm"
)

// ProgressService is the per-user-per-course ledger of completed lectures.
// After every successful update the matching enrollment is brought in line
// with the recomputed percentage.
type ProgressService struct {
	DB      *gorm.DB
	Log     *log.Logger
	Catalog *CatalogService

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProgressService(db *gorm.DB, logger *log.Logger, catalog *CatalogService) *ProgressService {
	return &ProgressService{
		DB:      db,
		Log:     logger,
		Catalog: catalog,
		locks:   make(map[string]*sync.Mutex),
	}
}

// lock serializes ledger writes per (user, course) so concurrent updates
// cannot drop each other's completed lectures.
func (ps *ProgressService) lock(userID, courseID string) *sync.Mutex {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	key := userID + "_" + courseID
	l, ok := ps.locks[key]
	if !ok {
		l = &sync.Mutex{}
		ps.locks[key] = l
	}
	return l
}

// MarkLectureComplete adds (or removes, when completed is false) a lecture
// in the user's completed set, recomputes the course percentage and
// propagates it to the enrollment.
func (ps *ProgressService) MarkLectureComplete(ctx context.Context, userID, courseID, lectureID string, completed bool) (*models.ProgressRecord, error) {
	l := ps.lock(userID, courseID)
	l.Lock()
	defer l.Unlock()

	var record models.ProgressRecord
	err := ps.DB.WithContext(ctx).
		First(&record, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record = models.ProgressRecord{UserID: userID, CourseID: courseID}
	}

	if completed {
		if !record.HasLecture(lectureID) {
			record.CompletedLectures = append(record.CompletedLectures, lectureID)
		}
	} else {
		kept := record.CompletedLectures[:0]
		for _, id := range record.CompletedLectures {
			if id != lectureID {
				kept = append(kept, id)
			}
		}
		record.CompletedLectures = kept
	}

	total, err := ps.Catalog.TotalLectures(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		record.Progress = float64(len(record.CompletedLectures)) / float64(total) * 100
	} else {
		record.Progress = 0
	}
	record.LastAccessedAt = time.Now()

	if err := ps.DB.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}

	// Keep the enrollment consistent with the ledger.
	err = ps.DB.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"progress":  record.Progress,
			"completed": record.Progress >= 100,
		}).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetProgress returns the course percentage, zero when no ledger entry
// exists yet.
func (ps *ProgressService) GetProgress(ctx context.Context, userID, courseID string) (float64, error) {
	var record models.ProgressRecord
	err := ps.DB.WithContext(ctx).
		First(&record, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return record.Progress, nil
}

// Records returns every ledger entry for the user.
func (ps *ProgressService) Records(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	err := ps.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error
	return records, err
}
