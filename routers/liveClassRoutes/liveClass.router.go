package liveClassRoutes

import (
	liveClassController "elearn/controllers/liveclass"
	"elearn/middleware"
	validators "elearn/validators/liveclass"

	"github.com/gofiber/fiber/v2"
)

// SetupLiveClassRoutes sets up live class scheduling routes
func SetupLiveClassRoutes(app *fiber.App) {
	group := app.Group("/live-class", middleware.JWTMiddleware)

	group.Post("/create",
		middleware.RequireRole("TEACHER", "ADMIN"),
		validators.CreateLiveClass(),
		liveClassController.CreateLiveClass)

	group.Put("/update/:liveClassId",
		middleware.RequireRole("TEACHER", "ADMIN"),
		validators.UpdateLiveClass(),
		liveClassController.UpdateLiveClass)

	group.Put("/cancel/:liveClassId",
		middleware.RequireRole("TEACHER", "ADMIN"),
		liveClassController.CancelLiveClass)

	group.Get("/teacher/history",
		middleware.RequireRole("TEACHER", "ADMIN"),
		liveClassController.GetTeacherLiveClassHistory)

	group.Get("/student/all", liveClassController.GetStudentLiveClasses)
}
