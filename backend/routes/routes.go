package routes

import (
	"progreso/backend/config"
	"progreso/backend/controllers"
	"progreso/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)

	// Students
	studentsController := controllers.NewStudentsController(db, cfg)
	app.Post("/api/students", studentsController.CreateOrGetStudent)
	app.Get("/api/student-stats/:id", studentsController.GetStudentStats)

	// Videos & materias
	videosController := controllers.NewVideosController(db, cfg)
	app.Get("/api/materias", videosController.GetMaterias)
	app.Get("/api/videos", videosController.GetVideos)
	app.Post("/api/video-completo", videosController.CompleteVideo)

	// Adaptive tests
	testsController := controllers.NewTestsController(db, cfg)
	app.Get("/api/pregunta", testsController.GetQuestion)
	app.Post("/api/test-result", testsController.SubmitResult)

	// Rewards & results
	rewardsController := controllers.NewRewardsController(db, cfg)
	app.Get("/api/rewards", rewardsController.GetRewards)
	app.Get("/api/results", rewardsController.GetResults)

	// Admin routes for reference content
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware)
	admin.Post("/videos", adminController.CreateVideo)
	admin.Post("/questions", adminController.CreateQuestion)
}
