package quizController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SaveQuizAttempt scores and persists a student's quiz submission. Marks are
// always recomputed server-side from the stored definition; anything the
// client sends for obtained/total marks is ignored. The composite unique
// index on (quiz_id, student_id) is the attempt gate: a second submission
// for the same pair fails the insert, and under concurrent submissions the
// database constraint picks exactly one winner.
func SaveQuizAttempt(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedAttempt").(*struct {
		Quiz    uint  `json:"quiz"`
		Answers []int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quizDef courseModels.QuizDefinition
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.Quiz, false).First(&quizDef).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	questions, err := quizDef.QuestionList()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	obtained, total, err := courseModels.ScoreQuiz(questions, reqData.Answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	attempt := courseModels.QuizAttempt{
		QuizID:        quizDef.ID,
		StudentID:     studentID,
		ObtainedMarks: obtained,
		TotalMarks:    total,
		AttemptedAt:   time.Now(),
	}
	if err := attempt.SetAnswers(reqData.Answers); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already attempted this quiz.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt saved!", attempt)
}

// GetQuizAttemptsByStudent lists every attempt a student has made, for
// dashboards and completion checks.
func GetQuizAttemptsByStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Order("attempted_at desc").
		Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}

// GetQuizAttemptsByQuiz lists every attempt against one quiz (teacher view)
func GetQuizAttemptsByQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("attempted_at desc").
		Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}

// GetCourseQuizCompletion reports how many of a course's quizzes a student
// has attempted. A course counts as complete for certificate purposes when
// the student has an attempt for every quiz under it.
func GetCourseQuizCompletion(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var totalQuizzes int64
	if err := database.Database.Db.Model(&courseModels.QuizDefinition{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalQuizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	var attempted int64
	if err := database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Joins("JOIN quiz_definitions ON quiz_definitions.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.student_id = ? AND quiz_definitions.course_id = ? AND quiz_attempts.is_deleted = ?", studentID, courseID, false).
		Count(&attempted).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz completion fetched successfully!", fiber.Map{
		"course_id":     courseID,
		"student_id":    studentID,
		"total_quizzes": totalQuizzes,
		"attempted":     attempted,
		"completed":     totalQuizzes > 0 && attempted >= totalQuizzes,
	})
}
