package examController

import (
	"log"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// GetSubjectDetails returns one active subject with its active chapters
func GetSubjectDetails(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("id = ? AND is_active = ?", subjectID, true).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var chapters []models.Chapter
	if err := db.Where("subject_id = ? AND is_active = ?", subjectID, true).
		Order("order_index asc").
		Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject fetched successfully!", fiber.Map{
		"subject":  subject,
		"chapters": chapters,
	})
}

// AdminCreateSubject creates a subject under an exam
func AdminCreateSubject(c *fiber.Ctx) error {
	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
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

	if err := db.First(&models.Exam{}, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	subject := models.Subject{
		ExamID:      examID,
		Name:        reqData.Name,
		Description: reqData.Description,
		IsActive:    true,
		OrderIndex:  reqData.OrderIndex,
	}
	if err := db.Create(&subject).Error; err != nil {
		log.Printf("Error creating subject: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", fiber.Map{
		"subject": subject,
	})
}

// AdminGetExamSubjects lists all subjects of an exam, inactive included
func AdminGetExamSubjects(c *fiber.Ctx) error {
	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Exam{}, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var subjects []models.Subject
	if err := db.Where("exam_id = ?", examID).Order("order_index asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", fiber.Map{
		"subjects": subjects,
	})
}

// AdminUpdateSubject applies a partial update to a subject
func AdminUpdateSubject(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
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

	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	if reqData.Name != nil {
		subject.Name = *reqData.Name
	}
	if reqData.Description != nil {
		subject.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		subject.IsActive = *reqData.IsActive
	}
	if reqData.OrderIndex != nil {
		subject.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject updated successfully!", fiber.Map{
		"subject": subject,
	})
}

// AdminDeleteSubject soft deletes a subject
func AdminDeleteSubject(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	if err := db.Delete(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject deleted successfully!", nil)
}

// AdminReorderSubject sets a subject's order index
func AdminReorderSubject(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	reqData := new(struct {
		OrderIndex int `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	subject.OrderIndex = reqData.OrderIndex
	if err := db.Save(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject reordered successfully!", fiber.Map{
		"subject": subject,
	})
}
