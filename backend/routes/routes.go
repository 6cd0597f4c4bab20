package routes

import (
	"log"

	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger, cache *utils.Cache) {
	catalog := services.NewCatalogService(db, logger, cache, services.StaticContent{})
	enrollments := services.NewEnrollmentService(db, logger, catalog)
	progress := services.NewProgressService(db, logger, catalog)
	quizzes := services.NewQuizService(db, logger, services.StaticContent{}, progress)
	streak := services.NewStreakService(db, logger, progress)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, enrollments, progress, streak, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Get("/api/user/stats", authMiddleware, userController.GetStats)

	// Courses routes
	coursesController := controllers.NewCoursesController(catalog, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Get("/:id/subcourses", coursesController.GetSubCourses)
	courses.Get("/:id/subcourses/:subId/lectures", coursesController.GetLectures)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(enrollments, progress, cfg)
	courses.Post("/:id/enroll", enrollmentController.Enroll)
	courses.Get("/:id/enrollment", enrollmentController.GetEnrollment)
	courses.Put("/:id/enrollment", enrollmentController.UpdateEnrollment)
	app.Get("/api/enrollments", authMiddleware, enrollmentController.GetUserCourses)

	// Progress routes
	progressController := controllers.NewProgressController(progress, streak, cfg)
	courses.Post("/:id/lectures/:lectureId/progress", progressController.UpdateLectureProgress)
	courses.Get("/:id/progress", progressController.GetProgress)
	app.Get("/api/streak", authMiddleware, progressController.GetStreak)

	// Quiz routes
	quizController := controllers.NewQuizController(quizzes, cfg)
	lectures := app.Group("/api/lectures", authMiddleware)
	lectures.Get("/:lectureId/quiz", quizController.GetQuiz)
	lectures.Post("/:lectureId/quiz/attempts", quizController.SubmitQuiz)
	lectures.Get("/:lectureId/quiz/attempts", quizController.GetAttempts)
}
