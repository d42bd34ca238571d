package examController

import (
	"log"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllExams lists active exams for learners
func GetAllExams(c *fiber.Ctx) error {
	var exams []models.Exam
	if err := database.Database.Db.
		Where("is_active = ?", true).
		Order("order_index asc").
		Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully!", fiber.Map{
		"exams": exams,
	})
}

// GetExamDetails returns one active exam with its active subjects
func GetExamDetails(c *fiber.Ctx) error {
	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	db := database.Database.Db

	var exam models.Exam
	if err := db.Where("id = ? AND is_active = ?", examID, true).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var subjects []models.Subject
	if err := db.Where("exam_id = ? AND is_active = ?", examID, true).
		Order("order_index asc").
		Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam fetched successfully!", fiber.Map{
		"exam":     exam,
		"subjects": subjects,
	})
}

// AdminCreateExam creates a new exam
func AdminCreateExam(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	exam := models.Exam{
		Name:        reqData.Name,
		Description: reqData.Description,
		IsActive:    true,
		OrderIndex:  reqData.OrderIndex,
	}
	if err := database.Database.Db.Create(&exam).Error; err != nil {
		log.Printf("Error creating exam: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam created successfully!", fiber.Map{
		"exam": exam,
	})
}

// AdminGetAllExams lists every exam, inactive included
func AdminGetAllExams(c *fiber.Ctx) error {
	var exams []models.Exam
	if err := database.Database.Db.Order("order_index asc").Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully!", fiber.Map{
		"exams": exams,
	})
}

// AdminUpdateExam applies a partial update to an exam
func AdminUpdateExam(c *fiber.Ctx) error {
	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
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

	var exam models.Exam
	if err := db.First(&exam, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	if reqData.Name != nil {
		exam.Name = *reqData.Name
	}
	if reqData.Description != nil {
		exam.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		exam.IsActive = *reqData.IsActive
	}
	if reqData.OrderIndex != nil {
		exam.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam updated successfully!", fiber.Map{
		"exam": exam,
	})
}

// AdminDeleteExam soft deletes an exam
func AdminDeleteExam(c *fiber.Ctx) error {
	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	db := database.Database.Db

	var exam models.Exam
	if err := db.First(&exam, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	if err := db.Delete(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam deleted successfully!", nil)
}
