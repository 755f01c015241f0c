package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo     *repository.LessonRepository
	CourseRepo     *repository.CourseRepository
	CompletionRepo *repository.CompletionRepository
	EnrollmentRepo *repository.EnrollmentRepository
	DB             *gorm.DB
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	completionRepo *repository.CompletionRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	db *gorm.DB,
) *LessonService {
	return &LessonService{
		LessonRepo:     lessonRepo,
		CourseRepo:     courseRepo,
		CompletionRepo: completionRepo,
		EnrollmentRepo: enrollmentRepo,
		DB:             db,
	}
}

type LessonReq struct {
	CourseID        uint    `json:"courseId"`
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	VideoURL        *string `json:"videoUrl"`
	OrderIndex      *int    `json:"orderIndex"`
	DurationMinutes *int    `json:"durationMinutes"`
}

// LessonWithCompletion 课时加上当前用户的完成标记
type LessonWithCompletion struct {
	model.Lesson
	IsCompleted bool `json:"isCompleted"`
}

// ListByCourse 课程课时列表；仅当用户已选课时才查询完成标记
func (s *LessonService) ListByCourse(userID, courseID uint) ([]LessonWithCompletion, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lessons, err := s.LessonRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	completed := map[uint]bool{}
	_, err = s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err == nil && len(lessons) > 0 {
		lessonIDs := make([]uint, 0, len(lessons))
		for _, l := range lessons {
			lessonIDs = append(lessonIDs, l.ID)
		}
		completed, err = s.CompletionRepo.CompletedLessonIDs(userID, lessonIDs)
		if err != nil {
			return nil, err
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	result := make([]LessonWithCompletion, 0, len(lessons))
	for _, l := range lessons {
		result = append(result, LessonWithCompletion{Lesson: l, IsCompleted: completed[l.ID]})
	}
	return result, nil
}

func (s *LessonService) Get(userID, lessonID uint) (*LessonWithCompletion, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}

	_, err = s.CompletionRepo.FindByUserAndLesson(userID, lessonID)
	isCompleted := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &LessonWithCompletion{Lesson: *lesson, IsCompleted: isCompleted}, nil
}

func (s *LessonService) Create(actorID uint, req LessonReq) (*model.Lesson, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}
	if err := s.checkCourseOwnership(actorID, req.CourseID); err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		CourseID: req.CourseID,
		Title:    *req.Title,
	}
	applyLessonReq(lesson, req)

	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Update(actorID, lessonID uint, req LessonReq) (*model.Lesson, error) {
	lesson, err := s.ownedLesson(actorID, lessonID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	applyLessonReq(lesson, req)

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(actorID, lessonID uint) error {
	if _, err := s.ownedLesson(actorID, lessonID); err != nil {
		return err
	}
	return s.LessonRepo.Delete(lessonID)
}

// MarkComplete 标记课时完成。不要求已选课：存在选课记录时才重算进度。
func (s *LessonService) MarkComplete(userID, lessonID uint) (*model.LessonCompletion, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
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

	completion := &model.LessonCompletion{UserID: userID, LessonID: lessonID}
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

// Unmark 撤销课时完成并重算进度（进度百分比会下降，完成时间戳保留）
func (s *LessonService) Unmark(userID, lessonID uint) error {
	completion, err := s.CompletionRepo.FindByUserAndLesson(userID, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCompletionNotFound
	}
	if err != nil {
		return err
	}

	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.LessonCompletion{}, completion.ID).Error; err != nil {
			return err
		}
		return recomputeProgress(tx, userID, lesson.CourseID)
	})
}

// ownedLesson 查找课时并沿课程校验归属
func (s *LessonService) ownedLesson(actorID, lessonID uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.checkCourseOwnership(actorID, lesson.CourseID); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) checkCourseOwnership(actorID, courseID uint) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}
	if course.InstructorID != actorID {
		return util.ErrPermissionDenied
	}
	return nil
}

func applyLessonReq(lesson *model.Lesson, req LessonReq) {
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.OrderIndex != nil {
		lesson.OrderIndex = *req.OrderIndex
	}
	if req.DurationMinutes != nil {
		lesson.DurationMinutes = req.DurationMinutes
	}
}
