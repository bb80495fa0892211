package assignmentValidator

import (
	"elearn/middleware"
	courseModels "elearn/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.AssignmentQuestion)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.AssignmentName) == "" {
			errors["assignment_name"] = "Assignment name is required!"
		}
		if strings.TrimSpace(reqData.AssignmentQuestion) == "" {
			errors["assignment_question"] = "Assignment question is required!"
		}
		if reqData.Deadline.IsZero() {
			errors["deadline"] = "Deadline is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}
