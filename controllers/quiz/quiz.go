package quizController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateQuiz creates a quiz definition for a course owned by the teacher.
// Every question is validated before anything is written; the first invalid
// question rejects the whole definition.
func CreateQuiz(c *fiber.Ctx) error {
	teacherID, err := c.ParamsInt("teacherId")
	if err != nil || teacherID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher ID!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	// The path teacher must be the authenticated user
	if userID, ok := c.Locals("userId").(uint); !ok || userID != uint(teacherID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot create quizzes for another teacher!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Name      string                  `json:"name" validate:"required"`
		Questions []courseModels.Question `json:"questions" validate:"required,min=1"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var teacher models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", teacherID, false).First(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	// Ownership check: the course must belong to the claimed teacher
	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = ?", courseID, teacherID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not owned by teacher!", nil)
	}

	quizDef := courseModels.QuizDefinition{
		CourseID: uint(courseID),
		QuizName: reqData.Name,
	}
	if err := quizDef.SetQuestions(reqData.Questions); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	if err := database.Database.Db.Create(&quizDef).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created!", fiber.Map{
		"quizId": quizDef.ID,
	})
}

// quizSummary is the list entry shared by both projections
type quizSummary struct {
	ID            uint        `json:"id"`
	QuizName      string      `json:"quiz_name"`
	CourseID      uint        `json:"course_id"`
	QuestionCount int         `json:"question_count"`
	CreatedAt     interface{} `json:"created_at"`
	Questions     interface{} `json:"questions"`
}

// GetQuizzesByCourse lists quiz definitions for a course. The owning teacher
// receives the full definitions including the answer key; everyone else gets
// the student projection with the correct indices stripped.
func GetQuizzesByCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format!", nil)
	}

	userID, _ := c.Locals("userId").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	isOwner := course.InstructorID == userID

	var quizzes []courseModels.QuizDefinition
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at asc").
		Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	result := make([]quizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		questions, err := quiz.QuestionList()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
		}

		entry := quizSummary{
			ID:            quiz.ID,
			QuizName:      quiz.QuizName,
			CourseID:      quiz.CourseID,
			QuestionCount: len(questions),
			CreatedAt:     quiz.CreatedAt,
		}

		if isOwner {
			entry.Questions = questions
		} else {
			public, err := quiz.PublicQuestions()
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
			}
			entry.Questions = public
		}

		result = append(result, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", result)
}
