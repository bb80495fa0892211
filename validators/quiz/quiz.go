package quizValidator

import (
	"elearn/middleware"
	courseModels "elearn/models/course"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name      string                  `json:"name" validate:"required"`
			Questions []courseModels.Question `json:"questions" validate:"required,min=1"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "quizName and questions are required!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "quizName and questions are required!", nil)
		}

		// Per-question checks (option count, correct index range) run in the
		// model before anything is persisted, so the whole batch fails on the
		// first bad question.

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Clients may still send obtainedMarks/totalMarks; only the fields
		// below are kept. Marks are recomputed server-side.
		reqData := new(struct {
			Quiz    uint  `json:"quiz"`
			Answers []int `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Quiz == 0 {
			errors["quiz"] = "Quiz ID is required!"
		}
		if len(reqData.Answers) == 0 {
			errors["answers"] = "Answers are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}
