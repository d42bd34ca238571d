package quizController

import (
	"errors"
	"time"

	"github.com/solankismit/exambuddy/models"

	"gorm.io/gorm"
)

// UpdateQuizProgress upserts the (user, quiz) progress row. The first attempt
// creates the row; every later attempt forces IsCompleted true and bumps the
// attempt counter. A completed quiz never reverts, whatever the later scores.
func UpdateQuizProgress(db *gorm.DB, userID, quizID uint, isCompleted bool) (*models.UserQuizProgress, error) {
	var progress models.UserQuizProgress
	err := db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.UserQuizProgress{
			UserID:        userID,
			QuizID:        quizID,
			IsCompleted:   isCompleted,
			AttemptCount:  1,
			LastAttemptAt: time.Now(),
		}
		if err := db.Create(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}

	progress.IsCompleted = true
	progress.AttemptCount++
	progress.LastAttemptAt = time.Now()
	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpdateChapterProgress recomputes the user's chapter completion ratio from a
// live count of the chapter's active quizzes. Full recompute, not a delta, so
// the row self-heals after content edits.
func UpdateChapterProgress(db *gorm.DB, userID, chapterID uint) (*models.UserChapterProgress, error) {
	var chapter models.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}

	var quizIDs []uint
	if err := db.Model(&models.Quiz{}).
		Where("chapter_id = ? AND is_active = ?", chapterID, true).
		Pluck("id", &quizIDs).Error; err != nil {
		return nil, err
	}

	totalQuizzes := len(quizIDs)
	var completedQuizzes int64
	if totalQuizzes > 0 {
		if err := db.Model(&models.UserQuizProgress{}).
			Where("user_id = ? AND quiz_id IN ? AND is_completed = ?", userID, quizIDs, true).
			Count(&completedQuizzes).Error; err != nil {
			return nil, err
		}
	}

	progress := float64(0)
	if totalQuizzes > 0 {
		progress = float64(completedQuizzes) / float64(totalQuizzes) * 100
	}

	var row models.UserChapterProgress
	err := db.Where("user_id = ? AND chapter_id = ?", userID, chapterID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.UserChapterProgress{UserID: userID, ChapterID: chapterID}
	} else if err != nil {
		return nil, err
	}

	row.TotalQuizzes = totalQuizzes
	row.CompletedQuizzes = int(completedQuizzes)
	row.Progress = progress
	if err := db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateSubjectProgress recomputes the user's subject completion ratio. A
// chapter counts as completed only at a full 100%, not merely having a row.
func UpdateSubjectProgress(db *gorm.DB, userID, subjectID uint) (*models.UserSubjectProgress, error) {
	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	var chapterIDs []uint
	if err := db.Model(&models.Chapter{}).
		Where("subject_id = ? AND is_active = ?", subjectID, true).
		Pluck("id", &chapterIDs).Error; err != nil {
		return nil, err
	}

	totalChapters := len(chapterIDs)
	var completedChapters int64
	if totalChapters > 0 {
		if err := db.Model(&models.UserChapterProgress{}).
			Where("user_id = ? AND chapter_id IN ? AND progress >= ?", userID, chapterIDs, 100.0).
			Count(&completedChapters).Error; err != nil {
			return nil, err
		}
	}

	progress := float64(0)
	if totalChapters > 0 {
		progress = float64(completedChapters) / float64(totalChapters) * 100
	}

	var row models.UserSubjectProgress
	err := db.Where("user_id = ? AND subject_id = ?", userID, subjectID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.UserSubjectProgress{UserID: userID, SubjectID: subjectID}
	} else if err != nil {
		return nil, err
	}

	row.TotalChapters = totalChapters
	row.CompletedChapters = int(completedChapters)
	row.Progress = progress
	if err := db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateExamProgress recomputes the user's exam completion ratio from subjects
// that reached a full 100%.
func UpdateExamProgress(db *gorm.DB, userID, examID uint) (*models.UserExamProgress, error) {
	var exam models.Exam
	if err := db.First(&exam, examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	var subjectIDs []uint
	if err := db.Model(&models.Subject{}).
		Where("exam_id = ? AND is_active = ?", examID, true).
		Pluck("id", &subjectIDs).Error; err != nil {
		return nil, err
	}

	totalSubjects := len(subjectIDs)
	var completedSubjects int64
	if totalSubjects > 0 {
		if err := db.Model(&models.UserSubjectProgress{}).
			Where("user_id = ? AND subject_id IN ? AND progress >= ?", userID, subjectIDs, 100.0).
			Count(&completedSubjects).Error; err != nil {
			return nil, err
		}
	}

	progress := float64(0)
	if totalSubjects > 0 {
		progress = float64(completedSubjects) / float64(totalSubjects) * 100
	}

	var row models.UserExamProgress
	err := db.Where("user_id = ? AND exam_id = ?", userID, examID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.UserExamProgress{UserID: userID, ExamID: examID}
	} else if err != nil {
		return nil, err
	}

	row.TotalSubjects = totalSubjects
	row.CompletedSubjects = int(completedSubjects)
	row.Progress = progress
	if err := db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// RecalculateProgressAfterAttempt resolves the quiz's ancestry in one lookup and
// recomputes strictly bottom-up: each level reads state the previous level wrote.
func RecalculateProgressAfterAttempt(db *gorm.DB, userID, quizID uint) error {
	var quiz models.Quiz
	if err := db.Preload("Chapter.Subject").First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return err
	}

	if _, err := UpdateChapterProgress(db, userID, quiz.ChapterID); err != nil {
		return err
	}
	if _, err := UpdateSubjectProgress(db, userID, quiz.Chapter.SubjectID); err != nil {
		return err
	}
	if _, err := UpdateExamProgress(db, userID, quiz.Chapter.Subject.ExamID); err != nil {
		return err
	}
	return nil
}
