package certificateController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	"elearn/routers/certificateRoutes"
)

var dbCounter int

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dbCounter++
	dsn := fmt.Sprintf("file:certtest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	certificateRoutes.SetupCertificateRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hashed", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedCourseProgress creates a course with one quiz and an enrollment for
// the student. When attempted is true the quiz is already attempted.
func seedCourseProgress(t *testing.T, db *gorm.DB, studentID uint, attempted bool) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		CourseName:    "Algorithms",
		CourseInitial: "CS101",
		InstructorID:  1,
		Price:         500,
	}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&courseModels.Enrollment{
		StudentID: studentID,
		CourseID:  course.ID,
		Status:    "ENROLLED",
	}).Error)

	def := courseModels.QuizDefinition{CourseID: course.ID, QuizName: "Week 1 Quiz"}
	require.NoError(t, def.SetQuestions([]courseModels.Question{
		{Text: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 1},
	}))
	require.NoError(t, db.Create(&def).Error)

	if attempted {
		attempt := courseModels.QuizAttempt{
			QuizID:        def.ID,
			StudentID:     studentID,
			ObtainedMarks: 1,
			TotalMarks:    1,
			AttemptedAt:   time.Now(),
		}
		require.NoError(t, attempt.SetAnswers([]int{1}))
		require.NoError(t, db.Create(&attempt).Error)
	}
	return course
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string, user models.User, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestRequestCertificateRequiresQuizCompletion(t *testing.T) {
	app, db := setup(t)
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	course := seedCourseProgress(t, db, student.ID, false)

	path := fmt.Sprintf("/certificates/request/%d", course.ID)
	resp, out := doRequest(t, app, http.MethodPost, path, student, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please complete all quizzes before requesting a certificate!", out.Message)
}

func TestRequestCertificateRequiresEnrollment(t *testing.T) {
	app, db := setup(t)
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")

	resp, out := doRequest(t, app, http.MethodPost, "/certificates/request/42", student, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User not enrolled in this course!", out.Message)
}

func TestCertificateRequestAndApproval(t *testing.T) {
	app, db := setup(t)
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	admin := createUser(t, db, "Admin", "admin@example.com", "ADMIN")
	course := seedCourseProgress(t, db, student.ID, true)

	path := fmt.Sprintf("/certificates/request/%d", course.ID)
	resp, out := doRequest(t, app, http.MethodPost, path, student, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var request courseModels.CertificateRequest
	require.NoError(t, json.Unmarshal(out.Data, &request))
	assert.Equal(t, "PENDING", request.Status)

	// A second request while one is pending is rejected
	resp, out = doRequest(t, app, http.MethodPost, path, student, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Certificate request already pending!", out.Message)

	// Students cannot approve
	approvePath := fmt.Sprintf("/certificates/approve/%d", request.ID)
	resp, _ = doRequest(t, app, http.MethodPut, approvePath, student, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin approval issues the certificate
	resp, out = doRequest(t, app, http.MethodPut, approvePath, admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var certificate courseModels.Certificate
	require.NoError(t, json.Unmarshal(out.Data, &certificate))
	assert.Contains(t, certificate.CertificateNumber, "CERT-")

	require.NoError(t, db.First(&request, request.ID).Error)
	assert.Equal(t, "APPROVED", request.Status)
}
