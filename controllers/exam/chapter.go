package examController

import (
	"log"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// GetChapterDetails returns one active chapter with its active quizzes
func GetChapterDetails(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("id = ? AND is_active = ?", chapterID, true).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var quizzes []models.Quiz
	if err := db.Where("chapter_id = ? AND is_active = ?", chapterID, true).
		Order("order_index asc").
		Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", fiber.Map{
		"chapter": chapter,
		"quizzes": quizzes,
	})
}

// AdminCreateChapter creates a chapter under a subject
func AdminCreateChapter(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Subject{}, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	chapter := models.Chapter{
		SubjectID:   subjectID,
		Name:        reqData.Name,
		Description: reqData.Description,
		IsActive:    true,
		OrderIndex:  reqData.OrderIndex,
	}
	if err := db.Create(&chapter).Error; err != nil {
		log.Printf("Error creating chapter: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", fiber.Map{
		"chapter": chapter,
	})
}

// AdminGetSubjectChapters lists all chapters of a subject, inactive included
func AdminGetSubjectChapters(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Subject{}, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var chapters []models.Chapter
	if err := db.Where("subject_id = ?", subjectID).Order("order_index asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", fiber.Map{
		"chapters": chapters,
	})
}

// AdminUpdateChapter applies a partial update to a chapter
func AdminUpdateChapter(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	reqData := new(struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
		OrderIndex  *int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if reqData.Name != nil {
		chapter.Name = *reqData.Name
	}
	if reqData.Description != nil {
		chapter.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		chapter.IsActive = *reqData.IsActive
	}
	if reqData.OrderIndex != nil {
		chapter.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", fiber.Map{
		"chapter": chapter,
	})
}

// AdminDeleteChapter soft deletes a chapter
func AdminDeleteChapter(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if err := db.Delete(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminReorderChapter sets a chapter's order index
func AdminReorderChapter(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	reqData := new(struct {
		OrderIndex int `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	chapter.OrderIndex = reqData.OrderIndex
	if err := db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter reordered successfully!", fiber.Map{
		"chapter": chapter,
	})
}
