package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"elearn/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the authenticated student in a course after
// collecting the course fee. The enrollment, payment record and instructor
// revenue update commit in one transaction.
func EnrollInCourse(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		Method string  `json:"method"`
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", course.InstructorID, false).First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	// Check if student is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course!", nil)
	}

	// Collect the fee before touching any rows
	reference, err := utils.ChargePayment(studentID, reqData.Method, reqData.Amount)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	enrollment := courseModels.Enrollment{
		StudentID: studentID,
		CourseID:  uint(courseID),
		Status:    "ENROLLED",
	}

	payment := courseModels.Payment{
		StudentID: studentID,
		CourseID:  uint(courseID),
		Method:    reqData.Method,
		Amount:    reqData.Amount,
		Status:    "success",
		Reference: reference,
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	if err := tx.Model(&models.User{}).Where("id = ?", instructor.ID).
		Update("revenue", instructor.Revenue+reqData.Amount).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to credit instructor!", nil)
	}

	tx.Commit()

	go func(email, name, courseName, method string, amount float64, ref string) {
		if err := utils.SendEnrollmentReceipt(email, name, courseName, method, amount, ref); err != nil {
			log.Printf("Error sending enrollment receipt to %s: %v", email, err)
		}
	}(student.Email, student.Name, course.CourseName, reqData.Method, reqData.Amount, reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment successful!", fiber.Map{
		"enrollment": enrollment,
		"payment":    payment,
	})
}

// GetStudentPayments lists payments made by the authenticated student
func GetStudentPayments(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []courseModels.Payment
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
