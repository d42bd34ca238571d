package examController

import (
	"log"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// GetQuizDetails returns one active quiz with its active question count
func GetQuizDetails(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_active = ?", quizID, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questionCount int64
	if err := db.Model(&models.Question{}).
		Where("quiz_id = ? AND is_active = ?", quizID, true).
		Count(&questionCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":           quiz,
		"question_count": questionCount,
	})
}

// AdminCreateQuiz creates a quiz under a chapter
func AdminCreateQuiz(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	reqData := new(struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Chapter{}, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	quiz := models.Quiz{
		ChapterID:   chapterID,
		Title:       reqData.Title,
		Description: reqData.Description,
		IsActive:    true,
		OrderIndex:  reqData.OrderIndex,
	}
	if err := db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", fiber.Map{
		"quiz": quiz,
	})
}

// AdminGetChapterQuizzes lists all quizzes of a chapter, inactive included
func AdminGetChapterQuizzes(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Chapter{}, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var quizzes []models.Quiz
	if err := db.Where("chapter_id = ?", chapterID).Order("order_index asc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": quizzes,
	})
}

// AdminUpdateQuiz applies a partial update to a quiz
func AdminUpdateQuiz(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
		OrderIndex  *int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if reqData.Title != nil {
		quiz.Title = *reqData.Title
	}
	if reqData.Description != nil {
		quiz.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		quiz.IsActive = *reqData.IsActive
	}
	if reqData.OrderIndex != nil {
		quiz.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", fiber.Map{
		"quiz": quiz,
	})
}

// AdminDeleteQuiz soft deletes a quiz
func AdminDeleteQuiz(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if err := db.Delete(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}
