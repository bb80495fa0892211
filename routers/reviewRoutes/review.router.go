package reviewRoutes

import (
	reviewController "elearn/controllers/review"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up course review routes
func SetupReviewRoutes(app *fiber.App) {
	group := app.Group("/reviews")

	group.Get("/", reviewController.GetAllReviews)
	group.Post("/", middleware.JWTMiddleware, reviewController.CreateReview)
	group.Put("/:id", middleware.JWTMiddleware, reviewController.UpdateReview)
	group.Delete("/:id", middleware.JWTMiddleware, reviewController.DeleteReview)
}
