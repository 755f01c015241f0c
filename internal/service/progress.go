package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"time"

	"gorm.io/gorm"
)

// recomputeProgress 依据完成记录重新计算选课进度，从不增量累加。
// 没有选课记录时静默返回（测验驱动的完成可能发生在未选课的课程上）。
// 进度首次达到 100 时盖完成时间戳，之后不再变更。
func recomputeProgress(tx *gorm.DB, userID, courseID uint) error {
	var enrollment model.Enrollment
	err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	total, err := repository.CountLessons(tx, courseID)
	if err != nil {
		return err
	}
	completed, err := repository.CountCompletedLessons(tx, userID, courseID)
	if err != nil {
		return err
	}

	if total > 0 {
		enrollment.ProgressPercentage = float64(completed) / float64(total) * 100
	} else {
		enrollment.ProgressPercentage = 0
	}

	if enrollment.ProgressPercentage >= 100 && enrollment.CompletedAt == nil {
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	return tx.Save(&enrollment).Error
}
