package examController

import (
	"math"
	"time"

	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/middleware"
	"github.com/solankismit/exambuddy/models"

	"github.com/gofiber/fiber/v2"
)

// AdminGetDashboard returns user and content statistics for the admin panel
func AdminGetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, adminUsers, regularUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, "ADMIN").Count(&adminUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, "USER").Count(&regularUsers)

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	var usersThisMonth, usersLastMonth int64
	db.Model(&models.User{}).Where("created_at >= ?", startOfMonth).Count(&usersThisMonth)
	db.Model(&models.User{}).Where("created_at >= ? AND created_at < ?", startOfLastMonth, startOfMonth).Count(&usersLastMonth)

	growthRate := float64(0)
	if usersLastMonth > 0 {
		growthRate = float64(usersThisMonth-usersLastMonth) / float64(usersLastMonth) * 100
	} else if usersThisMonth > 0 {
		growthRate = 100
	}

	var recentUsers []models.User
	db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Limit(10).
		Select("id", "email", "name", "role", "created_at").
		Find(&recentUsers)

	var totalExams, totalSubjects, totalChapters, totalQuizzes, totalQuestions, totalAttempts int64
	db.Model(&models.Exam{}).Count(&totalExams)
	db.Model(&models.Subject{}).Count(&totalSubjects)
	db.Model(&models.Chapter{}).Count(&totalChapters)
	db.Model(&models.Quiz{}).Count(&totalQuizzes)
	db.Model(&models.Question{}).Count(&totalQuestions)
	db.Model(&models.QuizAttempt{}).Count(&totalAttempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_users":      totalUsers,
			"admin_users":      adminUsers,
			"regular_users":    regularUsers,
			"users_this_month": usersThisMonth,
			"users_last_month": usersLastMonth,
			"growth_rate":      math.Round(growthRate*100) / 100,
		},
		"content": fiber.Map{
			"total_exams":     totalExams,
			"total_subjects":  totalSubjects,
			"total_chapters":  totalChapters,
			"total_quizzes":   totalQuizzes,
			"total_questions": totalQuestions,
			"total_attempts":  totalAttempts,
		},
		"recent_users": recentUsers,
	})
}
