package liveClassValidator

import (
	"elearn/middleware"
	courseModels "elearn/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.LiveClass)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartTime.IsZero() {
			errors["start_time"] = "Start time is required!"
		}
		if reqData.DurationMinutes < 1 {
			errors["duration_minutes"] = "Duration must be at least 1 minute!"
		}
		if !courseModels.ValidPlatform(reqData.Platform) {
			errors["platform"] = "Platform must be zoom, google-meet, teams or custom!"
		}
		if strings.TrimSpace(reqData.MeetingLink) == "" {
			errors["meeting_link"] = "Meeting link is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClass", reqData)
		return c.Next()
	}
}

func UpdateLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseModels.LiveClass)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Only provided fields are updated; a negative duration is the one
		// shape that can't be expressed as "not provided"
		if reqData.DurationMinutes < 0 {
			errors["duration_minutes"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClassUpdate", reqData)
		return c.Next()
	}
}
