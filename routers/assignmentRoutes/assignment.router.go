package assignmentRoutes

import (
	assignmentController "elearn/controllers/assignment"
	"elearn/middleware"
	validators "elearn/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes sets up assignment, submission and feedback routes
func SetupAssignmentRoutes(app *fiber.App) {
	group := app.Group("/assignments", middleware.JWTMiddleware)

	group.Post("/",
		middleware.RequireRole("TEACHER", "ADMIN"),
		validators.CreateAssignment(),
		assignmentController.CreateAssignment)

	group.Get("/", assignmentController.GetAssignmentsByCourse)
	group.Get("/by-teacher", assignmentController.GetAssignmentsByTeacher)

	// Submissions (multipart file upload)
	group.Post("/:assignmentId/answers", assignmentController.SubmitAssignmentAnswer)
	group.Get("/answers/by-student", assignmentController.GetAssignmentAnswersByStudent)
	group.Get("/answers/by-question",
		middleware.RequireRole("TEACHER", "ADMIN"),
		assignmentController.GetAssignmentAnswersByQuestion)

	// Feedback
	group.Post("/feedback",
		middleware.RequireRole("TEACHER", "ADMIN"),
		assignmentController.SubmitAssignmentFeedback)
	group.Get("/feedback/by-teacher",
		middleware.RequireRole("TEACHER", "ADMIN"),
		assignmentController.GetAssignmentFeedbackByTeacher)
	group.Get("/feedback/by-answer", assignmentController.GetAssignmentFeedbackByAnswer)
}
