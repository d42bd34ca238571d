package utils

import (
	"log"
	"strconv"
	"time"

	quizController "github.com/solankismit/exambuddy/controllers/quiz"
	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepStaleProgress recomputes every user's hierarchical aggregates from their
// quiz progress rows. The recompute is total and idempotent, so this heals
// aggregates left stale by content edits or by a submission that failed partway.
func sweepStaleProgress() {
	db := database.Database.Db

	type userQuiz struct {
		UserID uint
		QuizID uint
	}
	var pairs []userQuiz
	if err := db.Model(&models.UserQuizProgress{}).
		Distinct("user_id", "quiz_id").
		Find(&pairs).Error; err != nil {
		logScheduler("Error fetching progress rows: " + err.Error())
		return
	}

	recomputed := 0
	for _, p := range pairs {
		if err := quizController.RecalculateProgressAfterAttempt(db, p.UserID, p.QuizID); err != nil {
			logScheduler("Error recomputing progress: " + err.Error())
			continue
		}
		recomputed++
	}

	logScheduler("Recomputed progress for " + strconv.Itoa(recomputed) + " user/quiz pairs")
}

// StartProgressScheduler runs the nightly progress sweep
func StartProgressScheduler() {
	c := cron.New()

	// Every day at 03:00 server time
	if _, err := c.AddFunc("0 3 * * *", sweepStaleProgress); err != nil {
		log.Fatalf("Failed to schedule progress sweep: %v", err)
	}

	c.Start()
	logScheduler("Progress scheduler started")
}
