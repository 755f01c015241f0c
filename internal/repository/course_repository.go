package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// List 课程目录，publishedOnly 时只返回已发布课程
func (r *CourseRepository) List(skip, limit int, publishedOnly bool) ([]model.Course, error) {
	query := r.DB.Model(&model.Course{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var courses []model.Course
	err := query.Order("id asc").Offset(skip).Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete 删除课程并级联其课时、测验、完成记录与选课记录
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var lessonIDs []uint
		if err := tx.Model(&model.Lesson{}).Where("course_id = ?", id).Pluck("id", &lessonIDs).Error; err != nil {
			return err
		}

		if len(lessonIDs) > 0 {
			if err := deleteLessonChildren(tx, lessonIDs); err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Course{}, id).Error
	})
}

// deleteLessonChildren 删除一批课时下挂的测验、题目、选项、答题记录和完成记录
func deleteLessonChildren(tx *gorm.DB, lessonIDs []uint) error {
	var testIDs []uint
	if err := tx.Model(&model.Test{}).Where("lesson_id IN ?", lessonIDs).Pluck("id", &testIDs).Error; err != nil {
		return err
	}

	if len(testIDs) > 0 {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("test_id IN ?", testIDs).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.AnswerOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("test_id IN ?", testIDs).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("test_id IN ?", testIDs).Delete(&model.TestAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id IN ?", lessonIDs).Delete(&model.Test{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("lesson_id IN ?", lessonIDs).Delete(&model.LessonCompletion{}).Error
}
