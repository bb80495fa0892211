package userRoutes

import (
	userController "elearn/controllers/userControllers"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and user administration routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/details", middleware.JWTMiddleware, userController.GetUserDetails)
	userGroup.Post("/update-profile", middleware.JWTMiddleware, userController.UpdateProfile)

	// Admin only
	userGroup.Get("/all", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), userController.GetAllUsers)
	userGroup.Post("/delete", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), userController.DeleteUser)
}
