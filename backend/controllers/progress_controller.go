package controllers

import (
	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Progress *services.ProgressService
	Streak   *services.StreakService
	Cfg      *config.Config
}

func NewProgressController(progress *services.ProgressService, streak *services.StreakService, cfg *config.Config) *ProgressController {
	return &ProgressController{Progress: progress, Streak: streak, Cfg: cfg}
}

// UpdateLectureProgress godoc
// @Summary Mark a lecture complete or incomplete
// @Description Updates the user's completed-lecture set and recomputes course progress
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/lectures/{lectureId}/progress [post]
func (pc *ProgressController) UpdateLectureProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type ProgressInput struct {
		Completed bool `json:"completed"`
	}

	var input ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	record, err := pc.Progress.MarkLectureComplete(
		c.Context(), userID, c.Params("id"), c.Params("lectureId"), input.Completed)
	if err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return c.JSON(fiber.Map{
		"message":  "Progress updated",
		"progress": record,
	})
}

func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := pc.Progress.GetProgress(c.Context(), userID, c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{"progress": progress})
}

func (pc *ProgressController) GetStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	streak, err := pc.Streak.ComputeStreak(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not compute streak")
	}

	return c.JSON(fiber.Map{"streakDays": streak})
}
