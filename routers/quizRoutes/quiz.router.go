package quizRoutes

import (
	quizController "elearn/controllers/quiz"
	"elearn/middleware"
	validators "elearn/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz definition, attempt and reporting routes
func SetupQuizRoutes(app *fiber.App) {
	// Definition store
	app.Post("/teacher/:teacherId/courses/:courseId/quizzes",
		middleware.JWTMiddleware,
		middleware.RequireRole("TEACHER", "ADMIN"),
		validators.CreateQuiz(),
		quizController.CreateQuiz)

	app.Get("/course/:courseId/quizzes", middleware.JWTMiddleware, quizController.GetQuizzesByCourse)

	// Attempt gate
	app.Post("/quizAttempt",
		middleware.JWTMiddleware,
		validators.SubmitAttempt(),
		quizController.SaveQuizAttempt)

	// Reporting views
	app.Get("/student/:studentId/quizAttempts", middleware.JWTMiddleware, quizController.GetQuizAttemptsByStudent)
	app.Get("/quiz/:quizId/attempts",
		middleware.JWTMiddleware,
		middleware.RequireRole("TEACHER", "ADMIN"),
		quizController.GetQuizAttemptsByQuiz)
	app.Get("/student/:studentId/course/:courseId/quizCompletion",
		middleware.JWTMiddleware,
		quizController.GetCourseQuizCompletion)
}
