package quizController

import (
	"testing"
	"time"

	"github.com/solankismit/exambuddy/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestAdvanceStreak(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	threeDaysAgo := today.AddDate(0, 0, -3)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name         string
		current      int
		longest      int
		lastQuizDate *time.Time
		wantCurrent  int
		wantLongest  int
	}{
		{name: "no activity yet", current: 0, longest: 0, lastQuizDate: nil, wantCurrent: 1, wantLongest: 1},
		{name: "continues from yesterday", current: 3, longest: 5, lastQuizDate: &yesterday, wantCurrent: 4, wantLongest: 5},
		{name: "new longest", current: 5, longest: 5, lastQuizDate: &yesterday, wantCurrent: 6, wantLongest: 6},
		{name: "same day unchanged", current: 3, longest: 5, lastQuizDate: &today, wantCurrent: 3, wantLongest: 5},
		{name: "gap resets", current: 7, longest: 9, lastQuizDate: &threeDaysAgo, wantCurrent: 1, wantLongest: 9},
		{name: "future date resets", current: 4, longest: 4, lastQuizDate: &tomorrow, wantCurrent: 1, wantLongest: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := advanceStreak(tt.current, tt.longest, tt.lastQuizDate, today)
			assert.Equal(t, tt.wantCurrent, current)
			assert.Equal(t, tt.wantLongest, longest)
		})
	}
}

func TestUpdateUserStreak_CreatesRowOnFirstAttempt(t *testing.T) {
	db := setupTestDB(t)

	streak, err := UpdateUserStreak(db, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.NotNil(t, streak.LastQuizDate)
}

func TestUpdateUserStreak_SameDayDoesNotDoubleCount(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateUserStreak(db, 1)
	assert.NoError(t, err)

	streak, err := UpdateUserStreak(db, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)

	var rows int64
	db.Model(&models.UserStreak{}).Where("user_id = ?", 1).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateUserStreak_ContinuesFromYesterday(t *testing.T) {
	db := setupTestDB(t)

	yesterday := datatypes.Date(startOfDay(time.Now()).AddDate(0, 0, -1))
	seed := models.UserStreak{UserID: 1, CurrentStreak: 2, LongestStreak: 4, LastQuizDate: &yesterday}
	assert.NoError(t, db.Create(&seed).Error)

	streak, err := UpdateUserStreak(db, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Equal(t, 4, streak.LongestStreak)
}

func TestUpdateUserStreak_GapResetsButKeepsLongest(t *testing.T) {
	db := setupTestDB(t)

	lastWeek := datatypes.Date(startOfDay(time.Now()).AddDate(0, 0, -7))
	seed := models.UserStreak{UserID: 1, CurrentStreak: 6, LongestStreak: 6, LastQuizDate: &lastWeek}
	assert.NoError(t, db.Create(&seed).Error)

	streak, err := UpdateUserStreak(db, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 6, streak.LongestStreak)
}
