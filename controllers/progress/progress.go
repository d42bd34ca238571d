package progressController

import (
	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// GetProgressOverview returns the user's exam-level progress rows plus an
// overall completed-quiz ratio
func GetProgressOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var examProgress []models.UserExamProgress
	if err := db.Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&examProgress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	// Attach exam names
	examIDs := make([]uint, len(examProgress))
	for i, ep := range examProgress {
		examIDs[i] = ep.ExamID
	}
	examsByID := make(map[uint]models.Exam)
	if len(examIDs) > 0 {
		var exams []models.Exam
		if err := db.Where("id IN ?", examIDs).Find(&exams).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
		}
		for _, e := range exams {
			examsByID[e.ID] = e
		}
	}

	type examProgressEntry struct {
		models.UserExamProgress
		ExamName string `json:"exam_name"`
	}
	entries := make([]examProgressEntry, len(examProgress))
	for i, ep := range examProgress {
		entries[i] = examProgressEntry{UserExamProgress: ep, ExamName: examsByID[ep.ExamID].Name}
	}

	var totalQuizzes int64
	var completedQuizzes int64
	if err := db.Model(&models.UserQuizProgress{}).Where("user_id = ?", userID).Count(&totalQuizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	if err := db.Model(&models.UserQuizProgress{}).Where("user_id = ? AND is_completed = ?", userID, true).Count(&completedQuizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	overallProgress := float64(0)
	if totalQuizzes > 0 {
		overallProgress = float64(completedQuizzes) / float64(totalQuizzes) * 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"overview": fiber.Map{
			"total_exams":       len(examProgress),
			"total_quizzes":     totalQuizzes,
			"completed_quizzes": completedQuizzes,
			"overall_progress":  overallProgress,
		},
		"exam_progress": entries,
	})
}

// GetExamProgress returns the cached exam aggregate (zero-valued when absent)
// with the user's subject rows underneath it
func GetExamProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	db := database.Database.Db

	var exam models.Exam
	if err := db.First(&exam, examID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	examProgress := models.UserExamProgress{UserID: userID, ExamID: examID}
	db.Where("user_id = ? AND exam_id = ?", userID, examID).First(&examProgress)

	var subjectIDs []uint
	db.Model(&models.Subject{}).Where("exam_id = ?", examID).Pluck("id", &subjectIDs)

	var subjectProgress []models.UserSubjectProgress
	if len(subjectIDs) > 0 {
		if err := db.Where("user_id = ? AND subject_id IN ?", userID, subjectIDs).
			Find(&subjectProgress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"exam":             exam,
		"exam_progress":    examProgress,
		"subject_progress": subjectProgress,
	})
}

// GetSubjectProgress returns the cached subject aggregate with chapter rows
func GetSubjectProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	subjectID, ok := c.Locals("subjectID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	subjectProgress := models.UserSubjectProgress{UserID: userID, SubjectID: subjectID}
	db.Where("user_id = ? AND subject_id = ?", userID, subjectID).First(&subjectProgress)

	var chapterIDs []uint
	db.Model(&models.Chapter{}).Where("subject_id = ?", subjectID).Pluck("id", &chapterIDs)

	var chapterProgress []models.UserChapterProgress
	if len(chapterIDs) > 0 {
		if err := db.Where("user_id = ? AND chapter_id IN ?", userID, chapterIDs).
			Find(&chapterProgress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"subject":          subject,
		"subject_progress": subjectProgress,
		"chapter_progress": chapterProgress,
	})
}

// GetChapterProgress returns the cached chapter aggregate with the user's
// per-quiz rows
func GetChapterProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	chapterID, ok := c.Locals("chapterID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	chapterProgress := models.UserChapterProgress{UserID: userID, ChapterID: chapterID}
	db.Where("user_id = ? AND chapter_id = ?", userID, chapterID).First(&chapterProgress)

	var quizIDs []uint
	db.Model(&models.Quiz{}).Where("chapter_id = ?", chapterID).Pluck("id", &quizIDs)

	var quizProgress []models.UserQuizProgress
	if len(quizIDs) > 0 {
		if err := db.Where("user_id = ? AND quiz_id IN ?", userID, quizIDs).
			Find(&quizProgress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"chapter":          chapter,
		"chapter_progress": chapterProgress,
		"quiz_progress":    quizProgress,
	})
}

// GetStreak returns the user's streak, creating a zeroed row on first read
func GetStreak(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var streak models.UserStreak
	if err := db.Where("user_id = ?", userID).First(&streak).Error; err != nil {
		streak = models.UserStreak{UserID: userID, CurrentStreak: 0, LongestStreak: 0}
		if err := db.Create(&streak).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch streak!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Streak fetched successfully!", fiber.Map{
		"streak": fiber.Map{
			"current_streak": streak.CurrentStreak,
			"longest_streak": streak.LongestStreak,
			"last_quiz_date": streak.LastQuizDate,
		},
	})
}
