package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"project/backend/models"
	"project/backend/utils"

	"gorm.io/gorm"
)

const (
	coursesCacheKey = "courses:list"
	coursesCacheTTL = 5 * time.Minute
)

var ErrNotFound = errors.New("not found")

// CatalogService reads the course catalog and its structure. The store is
// seeded with default content on first read of an empty catalog.
type CatalogService struct {
	DB      *gorm.DB
	Log     *log.Logger
	Cache   *utils.Cache
	Content ContentProvider
}

func NewCatalogService(db *gorm.DB, logger *log.Logger, cache *utils.Cache, content ContentProvider) *CatalogService {
	return &CatalogService{DB: db, Log: logger, Cache: cache, Content: content}
}

// ListCourses returns all courses sorted by difficulty, then popularity,
// then creation date (newest first). On store failure it degrades to an
// empty list rather than propagating the error.
func (cs *CatalogService) ListCourses(ctx context.Context) []models.Course {
	if cached := cs.Cache.Get(ctx, coursesCacheKey); cached != "" {
		var courses []models.Course
		if err := json.Unmarshal([]byte(cached), &courses); err == nil {
			return courses
		}
	}

	var courses []models.Course
	if err := cs.DB.WithContext(ctx).Find(&courses).Error; err != nil {
		cs.Log.Printf("catalog: listing courses: %v", err)
		return []models.Course{}
	}

	if len(courses) == 0 {
		if err := cs.seedCourses(ctx); err != nil {
			cs.Log.Printf("catalog: seeding courses: %v", err)
			return []models.Course{}
		}
		if err := cs.DB.WithContext(ctx).Find(&courses).Error; err != nil {
			cs.Log.Printf("catalog: listing courses after seed: %v", err)
			return []models.Course{}
		}
	}

	sortCourses(courses)

	if data, err := json.Marshal(courses); err == nil {
		cs.Cache.Set(ctx, coursesCacheKey, string(data), coursesCacheTTL)
	}

	return courses
}

// seedCourses writes the default catalog. Save upserts by primary key, so
// repeated seeding is idempotent.
func (cs *CatalogService) seedCourses(ctx context.Context) error {
	for _, course := range cs.Content.DefaultCourses() {
		if err := cs.DB.WithContext(ctx).Save(&course).Error; err != nil {
			return err
		}
	}
	cs.Cache.Delete(ctx, coursesCacheKey)
	return nil
}

func sortCourses(courses []models.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]

		ra, rb := models.DifficultyRank(a.Difficulty), models.DifficultyRank(b.Difficulty)
		if ra != rb {
			return ra < rb
		}
		if a.IsPopular != b.IsPopular {
			return a.IsPopular
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

func (cs *CatalogService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := cs.DB.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// SubCourses returns the course structure with completion and lock state
// derived for the given user. When the store holds no structure rows the
// injected content provider's defaults are used instead.
func (cs *CatalogService) SubCourses(ctx context.Context, courseID, userID string) ([]models.SubCourse, error) {
	var subCourses []models.SubCourse
	err := cs.DB.WithContext(ctx).
		Preload("Lectures", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Where("course_id = ?", courseID).
		Order("sequence_order ASC").
		Find(&subCourses).Error
	if err != nil {
		return nil, err
	}

	if len(subCourses) == 0 {
		subCourses = cs.Content.DefaultSubCourses(courseID)
	}

	var completed []string
	if userID != "" {
		var record models.ProgressRecord
		err := cs.DB.WithContext(ctx).
			First(&record, "user_id = ? AND course_id = ?", userID, courseID).Error
		if err == nil {
			completed = record.CompletedLectures
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return ApplyProgress(subCourses, completed), nil
}

// Lectures returns one sub-course's lectures with derived state. Lock state
// depends on the preceding sub-courses, so the whole structure is derived.
func (cs *CatalogService) Lectures(ctx context.Context, courseID, subCourseID, userID string) ([]models.Lecture, error) {
	subCourses, err := cs.SubCourses(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	for _, sc := range subCourses {
		if sc.ID == subCourseID {
			return sc.Lectures, nil
		}
	}
	return nil, ErrNotFound
}

// TotalLectures is the progress denominator: the lecture count summed over
// the course's stored structure, falling back to the catalog lesson count
// when no structure rows exist.
func (cs *CatalogService) TotalLectures(ctx context.Context, courseID string) (int, error) {
	var count int64
	if err := cs.DB.WithContext(ctx).
		Model(&models.Lecture{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return int(count), nil
	}

	course, err := cs.GetCourse(ctx, courseID)
	if err != nil {
		return 0, err
	}
	return course.Lessons, nil
}
