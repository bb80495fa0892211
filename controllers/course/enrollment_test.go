package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

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
	"elearn/routers/courseRoutes"
)

var dbCounter int

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	// Charge locally instead of calling the sandbox gateway
	config.AppConfig.PaymentGatewayURL = ""

	dbCounter++
	dsn := fmt.Sprintf("file:coursetest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hashed", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, instructorID uint, name string, price float64) courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		CourseName:    name,
		CourseInitial: "CS101",
		Credit:        3,
		Department:    "CSE",
		InstructorID:  instructorID,
		Price:         price,
	}
	require.NoError(t, db.Create(&course).Error)
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

func TestEnrollInCourse(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	course := createCourse(t, db, teacher.ID, "Algorithms", 500)

	path := fmt.Sprintf("/course/enroll/%d", course.ID)
	resp, out := doRequest(t, app, http.MethodPost, path, student, fiber.Map{
		"method": "bkash",
		"amount": 500,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Status)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "ENROLLED", enrollment.Status)

	var payment courseModels.Payment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&payment).Error)
	assert.Equal(t, "bkash", payment.Method)
	assert.Equal(t, float64(500), payment.Amount)
	assert.NotEmpty(t, payment.Reference)

	var instructor models.User
	require.NoError(t, db.First(&instructor, teacher.ID).Error)
	assert.Equal(t, float64(500), instructor.Revenue)
}

func TestEnrollInCourseRejectsDuplicate(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	course := createCourse(t, db, teacher.ID, "Algorithms", 500)

	path := fmt.Sprintf("/course/enroll/%d", course.ID)
	body := fiber.Map{"method": "bkash", "amount": 500}

	resp, _ := doRequest(t, app, http.MethodPost, path, student, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, out := doRequest(t, app, http.MethodPost, path, student, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Already enrolled in this course!", out.Message)

	var count int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnrollInCourseValidatesPaymentMethod(t *testing.T) {
	app, db := setup(t)
	teacher := createUser(t, db, "Teacher", "teacher@example.com", "TEACHER")
	student := createUser(t, db, "Student", "student@example.com", "STUDENT")
	course := createCourse(t, db, teacher.ID, "Algorithms", 500)

	path := fmt.Sprintf("/course/enroll/%d", course.ID)
	resp, _ := doRequest(t, app, http.MethodPost, path, student, fiber.Map{
		"method": "paypal",
		"amount": 500,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
