package recordedController

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateRecordedClass uploads a recorded lecture entry for a course
func CreateRecordedClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRecordedClass").(*courseModels.RecordedClass)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = ?", reqData.CourseID, teacherID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to add recordings to this course!", nil)
	}

	reqData.TeacherID = teacherID

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create recorded class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Recorded class created!", reqData)
}

// GetRecordedClasses lists recorded lectures, optionally filtered by course
func GetRecordedClasses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&courseModels.RecordedClass{}).Where("is_deleted = ?", false)

	if courseID := c.QueryInt("courseId"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var classes []courseModels.RecordedClass
	if err := db.Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recorded classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recorded classes fetched successfully!", fiber.Map{
		"count": len(classes),
		"data":  classes,
	})
}

// GetRecordedClassByID fetches a single recorded lecture
func GetRecordedClassByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recorded class ID!", nil)
	}

	var recordedClass courseModels.RecordedClass
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&recordedClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recorded class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recorded class fetched successfully!", recordedClass)
}

// UpdateRecordedClass edits a recorded lecture (owner only)
func UpdateRecordedClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recorded class ID!", nil)
	}

	var recordedClass courseModels.RecordedClass
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&recordedClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recorded class not found!", nil)
	}

	if recordedClass.TeacherID != teacherID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot edit this recorded class!", nil)
	}

	reqData := new(struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Duration    int    `json:"duration"`
		IsPublished *bool  `json:"is_published"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		recordedClass.Title = reqData.Title
	}
	if reqData.Description != "" {
		recordedClass.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		recordedClass.VideoURL = reqData.VideoURL
	}
	if reqData.Duration > 0 {
		recordedClass.Duration = reqData.Duration
	}
	if reqData.IsPublished != nil {
		recordedClass.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&recordedClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update recorded class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recorded class updated!", recordedClass)
}

// DeleteRecordedClass soft deletes a recorded lecture (owner only)
func DeleteRecordedClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid recorded class ID!", nil)
	}

	var recordedClass courseModels.RecordedClass
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&recordedClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recorded class not found!", nil)
	}

	if recordedClass.TeacherID != teacherID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot delete this recorded class!", nil)
	}

	recordedClass.IsDeleted = true
	if err := database.Database.Db.Save(&recordedClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete recorded class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recorded class deleted!", nil)
}
