package quizController

import (
	"errors"
	"time"

	"github.com/solankismit/exambuddy/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateUserStreak advances the user's daily streak for an attempt made now.
// The row is created lazily on the first attempt.
func UpdateUserStreak(db *gorm.DB, userID uint) (*models.UserStreak, error) {
	today := startOfDay(time.Now())

	var streak models.UserStreak
	err := db.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		d := datatypes.Date(today)
		streak = models.UserStreak{
			UserID:        userID,
			CurrentStreak: 1,
			LongestStreak: 1,
			LastQuizDate:  &d,
		}
		if err := db.Create(&streak).Error; err != nil {
			return nil, err
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}

	var lastQuizDate *time.Time
	if streak.LastQuizDate != nil {
		t := startOfDay(time.Time(*streak.LastQuizDate))
		lastQuizDate = &t
	}

	current, longest := advanceStreak(streak.CurrentStreak, streak.LongestStreak, lastQuizDate, today)

	d := datatypes.Date(today)
	streak.CurrentStreak = current
	streak.LongestStreak = longest
	streak.LastQuizDate = &d
	if err := db.Save(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}

// advanceStreak applies one day of activity to the stored counters. Pure
// function of the stored state and today's date:
//   - no recorded activity yet: counters restart at 1
//   - last activity yesterday: streak continues
//   - last activity today: counters unchanged
//   - anything else (gap of 2+ days, or a future date): streak resets to 1
func advanceStreak(current, longest int, lastQuizDate *time.Time, today time.Time) (int, int) {
	if lastQuizDate == nil {
		return 1, 1
	}

	yesterday := today.AddDate(0, 0, -1)
	switch {
	case sameDay(*lastQuizDate, yesterday):
		current++
	case sameDay(*lastQuizDate, today):
		// already counted today
	default:
		current = 1
	}

	if current > longest {
		longest = current
	}
	return current, longest
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
