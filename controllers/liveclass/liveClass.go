package liveClassController

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateLiveClass schedules a live class for a course owned by the teacher
func CreateLiveClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLiveClass").(*courseModels.LiveClass)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Verify course ownership
	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = ?", reqData.CourseID, teacherID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to add live class to this course!", nil)
	}

	reqData.TeacherID = teacherID
	reqData.Status = courseModels.LiveClassScheduled

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create live class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live class created successfully!", reqData)
}

// UpdateLiveClass edits schedule details of a live class (owner only)
func UpdateLiveClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	liveClassID, err := c.ParamsInt("liveClassId")
	if err != nil || liveClassID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid live class ID!", nil)
	}

	var liveClass courseModels.LiveClass
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", liveClassID, false).First(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live class not found!", nil)
	}

	if liveClass.TeacherID != teacherID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot edit this live class!", nil)
	}

	reqData, ok := c.Locals("validatedLiveClassUpdate").(*courseModels.LiveClass)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !reqData.StartTime.IsZero() {
		liveClass.StartTime = reqData.StartTime
	}
	if reqData.DurationMinutes > 0 {
		liveClass.DurationMinutes = reqData.DurationMinutes
	}
	if reqData.Title != "" {
		liveClass.Title = reqData.Title
	}
	if reqData.Description != "" {
		liveClass.Description = reqData.Description
	}

	if err := database.Database.Db.Save(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update live class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live class updated successfully!", liveClass)
}

// CancelLiveClass cancels a scheduled live class (owner only)
func CancelLiveClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	liveClassID, err := c.ParamsInt("liveClassId")
	if err != nil || liveClassID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid live class ID!", nil)
	}

	var liveClass courseModels.LiveClass
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", liveClassID, false).First(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live class not found!", nil)
	}

	if liveClass.TeacherID != teacherID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot cancel this class!", nil)
	}

	liveClass.Status = courseModels.LiveClassCancelled
	if err := database.Database.Db.Save(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel live class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live class cancelled!", nil)
}

// GetTeacherLiveClassHistory lists every live class the teacher has created
func GetTeacherLiveClassHistory(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var liveClasses []courseModels.LiveClass
	if err := database.Database.Db.
		Where("teacher_id = ? AND is_deleted = ?", teacherID, false).
		Order("created_at desc").
		Find(&liveClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher live class history!", liveClasses)
}

// GetStudentLiveClasses lists upcoming live classes across every course the
// student is enrolled in, earliest first
func GetStudentLiveClasses(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	courseIDs := make([]uint, len(enrollments))
	for i, e := range enrollments {
		courseIDs[i] = e.CourseID
	}

	var liveClasses []courseModels.LiveClass
	if len(courseIDs) > 0 {
		if err := database.Database.Db.
			Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Order("start_time asc").
			Find(&liveClasses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All available live classes!", liveClasses)
}
