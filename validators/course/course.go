package courseValidator

import (
	"elearn/middleware"
	courseModels "elearn/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.Course)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Course Name
		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["course_name"] = "Course name is required!"
		} else if len(strings.TrimSpace(reqData.CourseName)) < 3 {
			errors["course_name"] = "Course name must be at least 3 characters long!"
		}

		// Validate Course Initial
		if strings.TrimSpace(reqData.CourseInitial) == "" {
			errors["course_initial"] = "Course initial is required!"
		}

		// Validate Credit
		if reqData.Credit < 0 {
			errors["credit"] = "Credit cannot be negative!"
		}

		// Validate Department
		if strings.TrimSpace(reqData.Department) == "" {
			errors["department"] = "Department is required!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Method string  `json:"method"`
			Amount float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate payment method
		switch reqData.Method {
		case "bkash", "nagad", "card":
		case "":
			errors["method"] = "Payment method is required!"
		default:
			errors["method"] = "Payment method must be bkash, nagad or card!"
		}

		// Validate Amount
		if reqData.Amount <= 0 {
			errors["amount"] = "Invalid payment amount!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
