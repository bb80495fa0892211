package recordedRoutes

import (
	recordedController "elearn/controllers/recorded"
	"elearn/middleware"
	validators "elearn/validators/recorded"

	"github.com/gofiber/fiber/v2"
)

// SetupRecordedClassRoutes sets up recorded lecture routes
func SetupRecordedClassRoutes(app *fiber.App) {
	group := app.Group("/recorded-class", middleware.JWTMiddleware)

	group.Post("/create",
		middleware.RequireRole("TEACHER", "ADMIN"),
		validators.CreateRecordedClass(),
		recordedController.CreateRecordedClass)

	group.Get("/list", recordedController.GetRecordedClasses)
	group.Get("/:id", recordedController.GetRecordedClassByID)

	group.Put("/update/:id",
		middleware.RequireRole("TEACHER", "ADMIN"),
		recordedController.UpdateRecordedClass)

	group.Delete("/:id",
		middleware.RequireRole("TEACHER", "ADMIN"),
		recordedController.DeleteRecordedClass)
}
