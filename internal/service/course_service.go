package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

type CourseReq struct {
	Title           *string                `json:"title"`
	Description     *string                `json:"description"`
	DurationHours   *int                   `json:"durationHours"`
	Category        *string                `json:"category"`
	DifficultyLevel *model.DifficultyLevel `json:"difficultyLevel"`
	IsPublished     *bool                  `json:"isPublished"`
}

func (s *CourseService) List(skip, limit int, publishedOnly bool) ([]model.Course, error) {
	return s.CourseRepo.List(skip, limit, publishedOnly)
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) Create(instructorID uint, req CourseReq) (*model.Course, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}

	course := &model.Course{
		Title:           *req.Title,
		InstructorID:    instructorID,
		DifficultyLevel: model.Beginner,
	}
	applyCourseReq(course, req)

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(actorID, courseID uint, req CourseReq) (*model.Course, error) {
	course, err := s.ownedCourse(actorID, courseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	applyCourseReq(course, req)

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(actorID, courseID uint) error {
	if _, err := s.ownedCourse(actorID, courseID); err != nil {
		return err
	}
	return s.CourseRepo.Delete(courseID)
}

// ownedCourse 查找课程并校验归属：只有创建课程的讲师可以改动它
func (s *CourseService) ownedCourse(actorID, courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	if course.InstructorID != actorID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

func applyCourseReq(course *model.Course, req CourseReq) {
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.DurationHours != nil {
		course.DurationHours = *req.DurationHours
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.DifficultyLevel != nil {
		course.DifficultyLevel = *req.DifficultyLevel
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
}
