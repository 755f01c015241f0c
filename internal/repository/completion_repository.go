package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

func (r *CompletionRepository) Create(completion *model.LessonCompletion) error {
	return r.DB.Create(completion).Error
}

func (r *CompletionRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonCompletion, error) {
	var completion model.LessonCompletion
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&completion).Error
	return &completion, err
}

func (r *CompletionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LessonCompletion{}, id).Error
}

// CompletedLessonIDs 用户在给定课时集合中已完成的课时ID集合
func (r *CompletionRepository) CompletedLessonIDs(userID uint, lessonIDs []uint) (map[uint]bool, error) {
	completed := make(map[uint]bool)
	if len(lessonIDs) == 0 {
		return completed, nil
	}

	var ids []uint
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Pluck("lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		completed[id] = true
	}
	return completed, nil
}
