package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Catalog *services.CatalogService
	Cfg     *config.Config
}

func NewCoursesController(catalog *services.CatalogService, cfg *config.Config) *CoursesController {
	return &CoursesController{Catalog: catalog, Cfg: cfg}
}

// GetCourses returns the full catalog, sorted. Degrades to an empty list
// when the store is unreachable.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	courses := cc.Catalog.ListCourses(c.Context())
	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.Catalog.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(course)
}

// GetSubCourses returns the course structure with per-user completion and
// lock state derived on every read.
func (cc *CoursesController) GetSubCourses(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	subCourses, err := cc.Catalog.SubCourses(c.Context(), c.Params("id"), userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(subCourses)
}

func (cc *CoursesController) GetLectures(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lectures, err := cc.Catalog.Lectures(c.Context(), c.Params("id"), c.Params("subId"), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Sub-course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(lectures)
}
