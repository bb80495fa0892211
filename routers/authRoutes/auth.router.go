package authRoutes

import (
	authController "elearn/controllers/auth"
	validators "elearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, signin and password reset routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/")

	authGroup.Post("/signup", validators.Signup(), authController.Signup)
	authGroup.Post("/signin", validators.Login(), authController.Login)

	authGroup.Post("/forgot-password", authController.ForgotPassword)
	authGroup.Post("/reset-password", authController.ResetPassword)
	authGroup.Get("/verify-reset-token/:token", authController.VerifyResetToken)
}
