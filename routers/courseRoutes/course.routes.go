package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, enrollment and payment routes
func SetupCourseRoutes(app *fiber.App) {
	// Catalog
	app.Get("/courses", controllers.GetAllCourses)
	app.Get("/course/name/:courseName", controllers.GetCourseByName)

	// Teacher-owned course management
	app.Post("/course/create",
		middleware.JWTMiddleware,
		middleware.RequireRole("TEACHER", "ADMIN"),
		validators.CreateCourse(),
		controllers.CreateCourse)

	app.Delete("/course/:courseId", middleware.JWTMiddleware, controllers.DeleteCourse)

	// Enrollment with payment
	app.Post("/course/enroll/:courseId",
		middleware.JWTMiddleware,
		validators.EnrollCourse(),
		controllers.EnrollInCourse)

	app.Get("/courses/student/:studentId", middleware.JWTMiddleware, controllers.GetStudentCourses)

	// Payments
	app.Get("/payments", middleware.JWTMiddleware, controllers.GetStudentPayments)
}
