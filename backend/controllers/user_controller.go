package controllers

import (
	"math"
	"project/backend/config"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB          *gorm.DB
	Enrollments *services.EnrollmentService
	Progress    *services.ProgressService
	Streak      *services.StreakService
	Cfg         *config.Config
}

func NewUserController(db *gorm.DB, enrollments *services.EnrollmentService, progress *services.ProgressService, streak *services.StreakService, cfg *config.Config) *UserController {
	return &UserController{DB: db, Enrollments: enrollments, Progress: progress, Streak: streak, Cfg: cfg}
}

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return c.JSON(user)
}

// GetStats aggregates the profile screen numbers: course counts, lesson
// totals, overall progress across enrollments and the activity streak.
func (uc *UserController) GetStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	ctx := c.Context()
	courses, err := uc.Enrollments.EnrolledCourses(ctx, userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var (
		totalLessons     int
		completedLessons int
		totalProgress    float64
		completedCount   int
		inProgressCount  int
	)

	for _, course := range courses {
		progress, err := uc.Progress.GetProgress(ctx, userID, course.ID)
		if err != nil {
			continue
		}
		totalProgress += progress
		totalLessons += course.Lessons
		completedLessons += int(math.Round(progress / 100 * float64(course.Lessons)))

		if progress >= 100 {
			completedCount++
		} else if progress > 0 {
			inProgressCount++
		}
	}

	overallProgress := 0
	if len(courses) > 0 {
		overallProgress = int(math.Round(totalProgress / float64(len(courses))))
	}

	streak, err := uc.Streak.ComputeStreak(ctx, userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not compute streak")
	}

	return c.JSON(fiber.Map{
		"totalCourses":      len(courses),
		"completedCourses":  completedCount,
		"inProgressCourses": inProgressCount,
		"totalLessons":      totalLessons,
		"completedLessons":  completedLessons,
		"overallProgress":   overallProgress,
		"streak":            streak,
	})
}
