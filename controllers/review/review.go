package reviewController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateReview posts a new review on a course by the authenticated student
func CreateReview(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		CourseID uint   `json:"course_id"`
		Comment  string `json:"comment"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.CourseID == 0 || reqData.Comment == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All fields are required!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	review := models.Review{
		StudentID: studentID,
		CourseID:  reqData.CourseID,
		Comment:   reqData.Comment,
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", review)
}

// GetAllReviews lists all reviews, latest first
func GetAllReviews(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Review{}).Where("is_deleted = ?", false)

	if courseID := c.QueryInt("courseId"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var reviews []models.Review
	if err := db.Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

// UpdateReview edits the comment on a review (author only)
func UpdateReview(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review ID!", nil)
	}

	reqData := new(struct {
		Comment string `json:"comment"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.Comment == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Comment is required!", nil)
	}

	var review models.Review
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.StudentID != studentID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot edit this review!", nil)
	}

	review.Comment = reqData.Comment
	if err := database.Database.Db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated!", review)
}

// DeleteReview soft deletes a review (author or admin)
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review ID!", nil)
	}

	var review models.Review
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if review.StudentID != userID && user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot delete this review!", nil)
	}

	review.IsDeleted = true
	if err := database.Database.Db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted!", nil)
}
