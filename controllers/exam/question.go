package examController

import (
	"log"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateQuestion creates a question under a quiz. The Excel bulk importer
// feeds rows through this same path one at a time.
func AdminCreateQuestion(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	reqData := new(struct {
		Text          string `json:"text"`
		OptionA       string `json:"option_a"`
		OptionB       string `json:"option_b"`
		OptionC       string `json:"option_c"`
		OptionD       string `json:"option_d"`
		CorrectAnswer string `json:"correct_answer"`
		Explanation   string `json:"explanation"`
		Complexity    string `json:"complexity"`
		OrderIndex    int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Quiz{}, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if reqData.Complexity == "" {
		reqData.Complexity = "MEDIUM"
	}

	question := models.Question{
		QuizID:        quizID,
		Text:          reqData.Text,
		OptionA:       reqData.OptionA,
		OptionB:       reqData.OptionB,
		OptionC:       reqData.OptionC,
		OptionD:       reqData.OptionD,
		CorrectAnswer: reqData.CorrectAnswer,
		Explanation:   reqData.Explanation,
		Complexity:    reqData.Complexity,
		IsActive:      true,
		OrderIndex:    reqData.OrderIndex,
	}
	if err := db.Create(&question).Error; err != nil {
		log.Printf("Error creating question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", fiber.Map{
		"question": question,
	})
}

// AdminGetQuizQuestions lists all questions of a quiz, inactive included
func AdminGetQuizQuestions(c *fiber.Ctx) error {
	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Quiz{}, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.Question
	if err := db.Where("quiz_id = ?", quizID).Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"questions": questions,
	})
}

// AdminUpdateQuestion applies a partial update to a question. Correctness of
// past responses is never recomputed.
func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID, ok := c.Locals("questionID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	reqData := new(struct {
		Text          *string `json:"text"`
		OptionA       *string `json:"option_a"`
		OptionB       *string `json:"option_b"`
		OptionC       *string `json:"option_c"`
		OptionD       *string `json:"option_d"`
		CorrectAnswer *string `json:"correct_answer"`
		Explanation   *string `json:"explanation"`
		Complexity    *string `json:"complexity"`
		IsActive      *bool   `json:"is_active"`
		OrderIndex    *int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.Text != nil {
		question.Text = *reqData.Text
	}
	if reqData.OptionA != nil {
		question.OptionA = *reqData.OptionA
	}
	if reqData.OptionB != nil {
		question.OptionB = *reqData.OptionB
	}
	if reqData.OptionC != nil {
		question.OptionC = *reqData.OptionC
	}
	if reqData.OptionD != nil {
		question.OptionD = *reqData.OptionD
	}
	if reqData.CorrectAnswer != nil {
		question.CorrectAnswer = *reqData.CorrectAnswer
	}
	if reqData.Explanation != nil {
		question.Explanation = *reqData.Explanation
	}
	if reqData.Complexity != nil {
		question.Complexity = *reqData.Complexity
	}
	if reqData.IsActive != nil {
		question.IsActive = *reqData.IsActive
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}

	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", fiber.Map{
		"question": question,
	})
}

// AdminDeleteQuestion soft deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID, ok := c.Locals("questionID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	db := database.Database.Db

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if err := db.Delete(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
