package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	Quizzes *services.QuizService
	Cfg     *config.Config
}

func NewQuizController(quizzes *services.QuizService, cfg *config.Config) *QuizController {
	return &QuizController{Quizzes: quizzes, Cfg: cfg}
}

func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	quiz, err := qc.Quizzes.Quiz(c.Context(), c.Params("lectureId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(quiz)
}

func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, qc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type SubmitInput struct {
		CourseID    string `json:"courseId"`
		SubCourseID string `json:"subCourseId"`
		Answers     []int  `json:"answers"`
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	lectureID := c.Params("lectureId")
	quiz, err := qc.Quizzes.Quiz(c.Context(), lectureID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	result, err := qc.Quizzes.Submit(
		c.Context(), userID, input.CourseID, input.SubCourseID, lectureID, input.Answers, quiz)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuiz):
			return utils.BadRequest(c, "Quiz has no questions")
		case errors.Is(err, services.ErrNoAttemptsLeft):
			return utils.Forbidden(c, "No attempts left")
		}
		return utils.InternalServerError(c, "Could not save attempt")
	}

	return c.JSON(result)
}

func (qc *QuizController) GetAttempts(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, qc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	attempt, err := qc.Quizzes.Attempts(c.Context(), userID, c.Params("lectureId"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if attempt == nil {
		return utils.NotFound(c, "No attempts yet")
	}

	return c.JSON(fiber.Map{
		"attempts":  attempt.Attempts,
		"passed":    attempt.Passed,
		"lastScore": attempt.LastScore,
	})
}
