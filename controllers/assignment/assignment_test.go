package assignmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"elearn/routers/assignmentRoutes"
)

var dbCounter int

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.UploadDir = t.TempDir()

	dbCounter++
	dsn := fmt.Sprintf("file:assignmenttest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	assignmentRoutes.SetupAssignmentRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hashed", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createAssignment(t *testing.T, db *gorm.DB, teacherID, courseID uint, deadline time.Time) courseModels.AssignmentQuestion {
	t.Helper()
	assignment := courseModels.AssignmentQuestion{
		TeacherID:          teacherID,
		CourseID:           courseID,
		AssignmentName:     "Sorting homework",
		AssignmentQuestion: "Implement merge sort and compare it with quick sort.",
		Deadline:           deadline,
	}
	require.NoError(t, db.Create(&assignment).Error)
	return assignment
}

func token(t *testing.T, user models.User) string {
	t.Helper()
	tok, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return tok
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func submitFiles(t *testing.T, app *fiber.App, assignmentID uint, user models.User, fileNames ...string) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range fileNames {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("submission content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	path := fmt.Sprintf("/assignments/%d/answers", assignmentID)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token(t, user))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestSubmitAssignmentAnswer(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	assignment := createAssignment(t, db, teacher.ID, 1, time.Now().Add(24*time.Hour))

	resp, out := submitFiles(t, app, assignment.ID, student, "solution.pdf", "notes.txt")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, out.Status)

	var answer courseModels.AssignmentAnswer
	require.NoError(t, db.Where("assignment_question_id = ? AND student_id = ?", assignment.ID, student.ID).
		First(&answer).Error)

	var files []courseModels.SubmittedFile
	require.NoError(t, json.Unmarshal(answer.Answers, &files))
	require.Len(t, files, 2)
	assert.Equal(t, "solution.pdf", files[0].FileName)
}

func TestSubmitAssignmentAnswerAfterDeadline(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	assignment := createAssignment(t, db, teacher.ID, 1, time.Now().Add(-time.Hour))

	resp, out := submitFiles(t, app, assignment.ID, student, "solution.pdf")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Submission deadline has passed!", out.Message)

	var count int64
	require.NoError(t, db.Model(&courseModels.AssignmentAnswer{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitAssignmentAnswerRejectsSecondSubmission(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	assignment := createAssignment(t, db, teacher.ID, 1, time.Now().Add(24*time.Hour))

	resp, _ := submitFiles(t, app, assignment.ID, student, "solution.pdf")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, out := submitFiles(t, app, assignment.ID, student, "solution-v2.pdf")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "You have already submitted this assignment!", out.Message)

	var count int64
	require.NoError(t, db.Model(&courseModels.AssignmentAnswer{}).
		Where("assignment_question_id = ? AND student_id = ?", assignment.ID, student.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateAssignmentRejectsPastDeadline(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")

	body, err := json.Marshal(fiber.Map{
		"course_id":           1,
		"assignment_name":     "Sorting homework",
		"assignment_question": "Implement merge sort.",
		"deadline":            time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/assignments/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(t, teacher))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Deadline must be a future date!", out.Message)
}
