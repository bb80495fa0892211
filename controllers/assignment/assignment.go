package assignmentController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"
	"elearn/utils"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateAssignment hands out a new assignment with a hard deadline
func CreateAssignment(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*courseModels.AssignmentQuestion)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Deadline must still be in the future at creation time
	if !reqData.Deadline.After(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Deadline must be a future date!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = ?", reqData.CourseID, teacherID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to add assignments to this course!", nil)
	}

	reqData.TeacherID = teacherID

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created!", reqData)
}

// GetAssignmentsByCourse lists assignments for one course
func GetAssignmentsByCourse(c *fiber.Ctx) error {
	courseID := c.QueryInt("courseId")
	if courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required!", nil)
	}

	var assignments []courseModels.AssignmentQuestion
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("deadline asc").
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// GetAssignmentsByTeacher lists assignments handed out by one teacher
func GetAssignmentsByTeacher(c *fiber.Ctx) error {
	teacherID := c.QueryInt("teacherId")
	if teacherID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "teacherId is required!", nil)
	}

	var assignments []courseModels.AssignmentQuestion
	if err := database.Database.Db.
		Where("teacher_id = ? AND is_deleted = ?", teacherID, false).
		Order("created_at desc").
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// SubmitAssignmentAnswer accepts a student's submission files. Submissions
// after the deadline are rejected, and a student can submit only once per
// assignment (composite unique index).
func SubmitAssignmentAnswer(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentQuestionID, err := c.ParamsInt("assignmentId")
	if err != nil || assignmentQuestionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment ID!", nil)
	}

	var assignment courseModels.AssignmentQuestion
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", assignmentQuestionID, false).
		First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	// Deadline check
	if time.Now().After(assignment.Deadline) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Submission deadline has passed!", nil)
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one file is required!", nil)
	}

	files := make([]courseModels.SubmittedFile, 0, len(form.File["files"]))
	for _, fileHeader := range form.File["files"] {
		path, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded file!", nil)
		}
		files = append(files, courseModels.SubmittedFile{
			FilePath:   utils.GetFileURL(path),
			FileName:   fileHeader.Filename,
			UploadedAt: time.Now(),
		})
	}

	answersJSON, err := json.Marshal(files)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
	}

	submission := courseModels.AssignmentAnswer{
		AssignmentQuestionID: uint(assignmentQuestionID),
		StudentID:            studentID,
		Answers:              datatypes.JSON(answersJSON),
		SubmittedAt:          time.Now(),
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this assignment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Submission successful!", submission)
}

// GetAssignmentAnswersByStudent lists a student's submissions
func GetAssignmentAnswersByStudent(c *fiber.Ctx) error {
	studentID := c.QueryInt("studentId")
	if studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "studentId is required!", nil)
	}

	var answers []courseModels.AssignmentAnswer
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Order("submitted_at desc").
		Find(&answers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment answers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment answers fetched successfully!", answers)
}

// GetAssignmentAnswersByQuestion lists every submission against one assignment
func GetAssignmentAnswersByQuestion(c *fiber.Ctx) error {
	assignmentQuestionID := c.QueryInt("assignmentQuestionId")
	if assignmentQuestionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "assignmentQuestionId is required!", nil)
	}

	var answers []courseModels.AssignmentAnswer
	if err := database.Database.Db.
		Where("assignment_question_id = ? AND is_deleted = ?", assignmentQuestionID, false).
		Order("submitted_at asc").
		Find(&answers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment answers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment answers fetched successfully!", answers)
}

// SubmitAssignmentFeedback records a teacher's feedback on a submission
func SubmitAssignmentFeedback(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		AssignmentAnswerID uint   `json:"assignment_answer_id"`
		Feedback           string `json:"feedback"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.AssignmentAnswerID == 0 || reqData.Feedback == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "assignment_answer_id and feedback are required!", nil)
	}

	var answer courseModels.AssignmentAnswer
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", reqData.AssignmentAnswerID, false).
		First(&answer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment answer not found!", nil)
	}

	feedback := courseModels.AssignmentFeedback{
		AssignmentAnswerID: reqData.AssignmentAnswerID,
		TeacherID:          teacherID,
		Feedback:           reqData.Feedback,
		GivenAt:            time.Now(),
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback saved successfully!", feedback)
}

// GetAssignmentFeedbackByTeacher lists feedback written by one teacher
func GetAssignmentFeedbackByTeacher(c *fiber.Ctx) error {
	teacherID := c.QueryInt("teacherId")
	if teacherID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "teacherId is required!", nil)
	}

	var feedbacks []courseModels.AssignmentFeedback
	if err := database.Database.Db.
		Where("teacher_id = ? AND is_deleted = ?", teacherID, false).
		Order("given_at desc").
		Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedbacks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedbacks fetched successfully!", feedbacks)
}

// GetAssignmentFeedbackByAnswer lists feedback left on one submission
func GetAssignmentFeedbackByAnswer(c *fiber.Ctx) error {
	assignmentAnswerID := c.QueryInt("assignmentAnswerId")
	if assignmentAnswerID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "assignmentAnswerId is required!", nil)
	}

	var feedbacks []courseModels.AssignmentFeedback
	if err := database.Database.Db.
		Where("assignment_answer_id = ? AND is_deleted = ?", assignmentAnswerID, false).
		Order("given_at desc").
		Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	if len(feedbacks) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No feedback found for this answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", feedbacks)
}
