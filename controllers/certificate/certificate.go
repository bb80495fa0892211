package certificateController

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestCertificate requests a certificate for a completed course. The
// completion rule matches the reporting view: the student needs a quiz
// attempt for every quiz defined under the course.
func RequestCertificate(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Quiz completion check
	var totalQuizzes int64
	database.Database.Db.Model(&courseModels.QuizDefinition{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalQuizzes)

	var attempted int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Joins("JOIN quiz_definitions ON quiz_definitions.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.student_id = ? AND quiz_definitions.course_id = ? AND quiz_attempts.is_deleted = ?", studentID, courseID, false).
		Count(&attempted)

	if totalQuizzes == 0 || attempted < totalQuizzes {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete all quizzes before requesting a certificate!", nil)
	}

	// Check if certificate already requested
	var existingRequest courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&existingRequest).Error; err == nil {
		if existingRequest.Status == "PENDING" {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate request already pending!", nil)
		}
		if existingRequest.Status == "APPROVED" {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", nil)
		}
	}

	request := courseModels.CertificateRequest{
		StudentID:    studentID,
		CourseID:     uint(courseID),
		EnrollmentID: enrollment.ID,
		Status:       "PENDING",
		RequestedAt:  time.Now(),
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit certificate request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate request submitted successfully!", request)
}

// ApproveCertificateRequest approves a pending request and issues the
// certificate (admin only)
func ApproveCertificateRequest(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID, err := c.ParamsInt("requestId")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
	}

	var request courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("id = ? AND status = ? AND is_deleted = ?", requestID, "PENDING", false).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Pending certificate request not found!", nil)
	}

	now := time.Now()
	certificate := courseModels.Certificate{
		StudentID:         request.StudentID,
		CourseID:          request.CourseID,
		CertificateNumber: fmt.Sprintf("CERT-%s", uuid.NewString()),
		IssuedAt:          now,
	}

	tx := database.Database.Db.Begin()

	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	request.Status = "APPROVED"
	request.ApprovedAt = &now
	request.ApprovedBy = &adminID
	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve request!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", certificate)
}

// RejectCertificateRequest rejects a pending request with a reason (admin only)
func RejectCertificateRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("requestId")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
	}

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Reason == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rejection reason is required!", nil)
	}

	var request courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("id = ? AND status = ? AND is_deleted = ?", requestID, "PENDING", false).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Pending certificate request not found!", nil)
	}

	request.Status = "REJECTED"
	request.RejectionReason = reqData.Reason
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}

// GetStudentCertificates lists issued certificates for the current student
func GetStudentCertificates(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseName string `json:"course_name"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Order("issued_at desc").
		Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseName:  course.CourseName,
		}
	}

	// Also get pending requests
	var pendingRequests []courseModels.CertificateRequest
	database.Database.Db.
		Where("student_id = ? AND status = ? AND is_deleted = ?", studentID, "PENDING", false).
		Find(&pendingRequests)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates":     result,
		"pending_requests": len(pendingRequests),
	})
}
