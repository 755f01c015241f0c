package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	LessonRepo     *repository.LessonRepository
	CompletionRepo *repository.CompletionRepository
	DB             *gorm.DB
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	completionRepo *repository.CompletionRepository,
	db *gorm.DB,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		LessonRepo:     lessonRepo,
		CompletionRepo: completionRepo,
		DB:             db,
	}
}

func (s *EnrollmentService) MyEnrollments(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByUser(userID)
}

// Enroll 选课：课程必须存在且已发布，且不能重复选课
func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if !course.IsPublished {
		return nil, util.ErrCourseNotPublished
	}

	_, err = s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return nil, util.ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:             userID,
		CourseID:           courseID,
		ProgressPercentage: 0,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// CompleteLesson 选课端的课时完成：必须已选该课时所属课程
func (s *EnrollmentService) CompleteLesson(userID, lessonID uint, timeSpentMinutes *int) (*model.LessonCompletion, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}

	_, err = s.EnrollmentRepo.FindByUserAndCourse(userID, lesson.CourseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}

	_, err = s.CompletionRepo.FindByUserAndLesson(userID, lessonID)
	if err == nil {
		return nil, util.ErrAlreadyCompleted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	completion := &model.LessonCompletion{
		UserID:           userID,
		LessonID:         lessonID,
		TimeSpentMinutes: timeSpentMinutes,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(completion).Error; err != nil {
			return err
		}
		return recomputeProgress(tx, userID, lesson.CourseID)
	})
	if err != nil {
		return nil, err
	}
	return completion, nil
}

// ProgressReport 单门课程的进度详情
type ProgressReport struct {
	EnrollmentID       uint       `json:"enrollmentId"`
	ProgressPercentage float64    `json:"progressPercentage"`
	CompletedLessons   int64      `json:"completedLessons"`
	TotalLessons       int64      `json:"totalLessons"`
	IsCompleted        bool       `json:"isCompleted"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

func (s *EnrollmentService) Progress(userID, courseID uint) (*ProgressReport, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}

	total, err := repository.CountLessons(s.DB, courseID)
	if err != nil {
		return nil, err
	}
	completed, err := repository.CountCompletedLessons(s.DB, userID, courseID)
	if err != nil {
		return nil, err
	}

	return &ProgressReport{
		EnrollmentID:       enrollment.ID,
		ProgressPercentage: enrollment.ProgressPercentage,
		CompletedLessons:   completed,
		TotalLessons:       total,
		IsCompleted:        enrollment.CompletedAt != nil,
		CompletedAt:        enrollment.CompletedAt,
	}, nil
}
