package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentController struct {
	Enrollments *services.EnrollmentService
	Progress    *services.ProgressService
	Cfg         *config.Config
}

func NewEnrollmentController(enrollments *services.EnrollmentService, progress *services.ProgressService, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments, Progress: progress, Cfg: cfg}
}

func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	enrollment, err := ec.Enrollments.Enroll(c.Context(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not enroll")
	}

	return c.JSON(fiber.Map{
		"message":    "Enrolled",
		"enrollment": enrollment,
	})
}

func (ec *EnrollmentController) GetEnrollment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID := c.Params("id")
	enrolled, err := ec.Enrollments.IsEnrolled(c.Context(), userID, courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	progress, err := ec.Progress.GetProgress(c.Context(), userID, courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"enrolled": enrolled,
		"progress": progress,
	})
}

// GetUserCourses lists the user's enrolled courses together with their
// current percentage, for the home screen course cards.
func (ec *EnrollmentController) GetUserCourses(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courses, err := ec.Enrollments.EnrolledCourses(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		progress, err := ec.Progress.GetProgress(c.Context(), userID, course.ID)
		if err != nil {
			continue
		}
		result = append(result, fiber.Map{
			"course":   course,
			"progress": progress,
		})
	}

	return c.JSON(result)
}

// UpdateEnrollment moves the current-lesson pointer.
func (ec *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type UpdateInput struct {
		Progress      float64 `json:"progress"`
		CurrentLesson int     `json:"currentLesson"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err = ec.Enrollments.SetCurrentLesson(c.Context(), userID, c.Params("id"), input.Progress, input.CurrentLesson)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Enrollment not found")
		}
		return utils.InternalServerError(c, "Could not update enrollment")
	}

	return c.JSON(fiber.Map{"message": "Enrollment updated"})
}
