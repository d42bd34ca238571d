package quizController

import (
	"errors"
	"log"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitQuizAttempt evaluates a submission and records attempt, responses,
// progress and streak
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	reqData := new(struct {
		Responses []QuizResponse `json:"responses"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result, err := EvaluateQuizAttempt(database.Database.Db, userID, quizID, reqData.Responses)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		case errors.Is(err, ErrResponseCountMismatch), errors.Is(err, ErrUnknownQuestion):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		default:
			log.Printf("Error evaluating quiz attempt for user %d quiz %d: %v", userID, quizID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit attempt!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt submitted!", fiber.Map{
		"attempt": result,
	})
}

// GetQuizAttempts returns the user's attempt history for a quiz, newest first
func GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Quiz{}, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var attempts []models.QuizAttempt
	if err := db.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("completed_at desc").
		Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
	})
}

// GetQuizAttemptDetail returns one attempt with its per-question responses
func GetQuizAttemptDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}
	attemptID, ok := c.Locals("attemptID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid attempt id!", nil)
	}

	db := database.Database.Db

	var attempt models.QuizAttempt
	if err := db.Where("id = ? AND user_id = ? AND quiz_id = ?", attemptID, userID, quizID).
		First(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attempt not found!", nil)
	}

	var responses []models.QuestionResponse
	if err := db.Where("attempt_id = ?", attempt.ID).Find(&responses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch responses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt fetched successfully!", fiber.Map{
		"attempt":   attempt,
		"responses": responses,
	})
}

// GetQuizQuestions returns the quiz's active questions with answers and
// explanations, plus the ancestry chain, for review screens
func GetQuizQuestions(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, ok := c.Locals("quizID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	db := database.Database.Db

	var quiz models.Quiz
	err := db.Preload("Chapter.Subject.Exam").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("order_index asc")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"quiz": fiber.Map{
			"id":          quiz.ID,
			"title":       quiz.Title,
			"description": quiz.Description,
			"chapter": fiber.Map{
				"id":   quiz.Chapter.ID,
				"name": quiz.Chapter.Name,
				"subject": fiber.Map{
					"id":   quiz.Chapter.Subject.ID,
					"name": quiz.Chapter.Subject.Name,
					"exam": fiber.Map{
						"id":   quiz.Chapter.Subject.Exam.ID,
						"name": quiz.Chapter.Subject.Exam.Name,
					},
				},
			},
			"questions": quiz.Questions,
		},
	})
}
