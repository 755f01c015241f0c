package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) ListByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("user_id = ?", userID).Order("enrolled_at asc").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Save(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

// CountLessons 课程的课时总数
func CountLessons(tx *gorm.DB, courseID uint) (int64, error) {
	var total int64
	err := tx.Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&total).Error
	return total, err
}

// CountCompletedLessons 用户在课程内已完成的（去重）课时数
func CountCompletedLessons(tx *gorm.DB, userID, courseID uint) (int64, error) {
	var completed int64
	err := tx.Model(&model.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id").
		Where("lesson_completions.user_id = ? AND lessons.course_id = ? AND lessons.deleted_at IS NULL", userID, courseID).
		Count(&completed).Error
	return completed, err
}
