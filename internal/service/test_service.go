package service

import (
	"encoding/json"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/monitoring"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type TestService struct {
	TestRepo   *repository.TestRepository
	LessonRepo *repository.LessonRepository
	CourseRepo *repository.CourseRepository
	DB         *gorm.DB
}

func NewTestService(
	testRepo *repository.TestRepository,
	lessonRepo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	db *gorm.DB,
) *TestService {
	return &TestService{
		TestRepo:   testRepo,
		LessonRepo: lessonRepo,
		CourseRepo: courseRepo,
		DB:         db,
	}
}

type AnswerOptionReq struct {
	OptionText string `json:"optionText" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
	OrderIndex int    `json:"orderIndex"`
}

type QuestionReq struct {
	QuestionText  string            `json:"questionText" binding:"required"`
	QuestionType  model.QuestionType `json:"questionType" binding:"required,oneof=single_choice multiple_choice text"`
	Points        *int              `json:"points"`
	OrderIndex    int               `json:"orderIndex"`
	AnswerOptions []AnswerOptionReq `json:"answerOptions"`
}

type TestReq struct {
	LessonID         uint          `json:"lessonId" binding:"required"`
	Title            string        `json:"title" binding:"required"`
	Description      string        `json:"description"`
	PassingScore     float64       `json:"passingScore"`
	TimeLimitMinutes *int          `json:"timeLimitMinutes"`
	Questions        []QuestionReq `json:"questions"`
}

func (s *TestService) ListByLesson(lessonID uint) ([]model.Test, error) {
	return s.TestRepo.ListByLesson(lessonID)
}

// Get 测验详情，含按顺序排列的题目与选项
func (s *TestService) Get(testID uint) (*model.Test, error) {
	test, err := s.TestRepo.FindByID(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.TestRepo.ListQuestions(testID)
	if err != nil {
		return nil, err
	}
	test.Questions = questions
	return test, nil
}

// Create 创建测验（讲师限定，沿 课时→课程 校验归属）
func (s *TestService) Create(actorID uint, req TestReq) (*model.Test, error) {
	lesson, err := s.LessonRepo.FindByID(req.LessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != actorID {
		return nil, util.ErrPermissionDenied
	}

	test := &model.Test{
		LessonID:         req.LessonID,
		Title:            req.Title,
		Description:      req.Description,
		PassingScore:     req.PassingScore,
		TimeLimitMinutes: req.TimeLimitMinutes,
	}

	for _, qReq := range req.Questions {
		points := 1
		if qReq.Points != nil {
			points = *qReq.Points
		}
		q := model.Question{
			QuestionText: qReq.QuestionText,
			QuestionType: qReq.QuestionType,
			Points:       points,
			OrderIndex:   qReq.OrderIndex,
		}
		for _, oReq := range qReq.AnswerOptions {
			q.AnswerOptions = append(q.AnswerOptions, model.AnswerOption{
				OptionText: oReq.OptionText,
				IsCorrect:  oReq.IsCorrect,
				OrderIndex: oReq.OrderIndex,
			})
		}
		test.Questions = append(test.Questions, q)
	}

	if err := s.TestRepo.CreateTest(test); err != nil {
		return nil, err
	}
	return test, nil
}

type TestAttemptReq struct {
	AnswersData      map[string]interface{} `json:"answersData" binding:"required"`
	TimeSpentMinutes *int                   `json:"timeSpentMinutes"`
}

// SubmitAttempt 评分并记录答题。通过时若课时尚无完成记录则补记一条，
// 并在已选课的情况下重算选课进度，整个副作用在同一事务内完成。
func (s *TestService) SubmitAttempt(userID, testID uint, req TestAttemptReq) (*model.TestAttempt, error) {
	test, err := s.TestRepo.FindByID(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.TestRepo.ListQuestions(testID)
	if err != nil {
		return nil, err
	}

	score := gradeAnswers(questions, req.AnswersData)
	passed := score >= test.PassingScore

	answersJSON, err := json.Marshal(req.AnswersData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	attempt := &model.TestAttempt{
		UserID:           userID,
		TestID:           testID,
		Score:            score,
		Passed:           passed,
		CompletedAt:      &now,
		TimeSpentMinutes: req.TimeSpentMinutes,
		AnswersData:      answersJSON,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		if !passed {
			return nil
		}

		var existing model.LessonCompletion
		err := tx.Where("user_id = ? AND lesson_id = ?", userID, test.LessonID).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		completion := &model.LessonCompletion{UserID: userID, LessonID: test.LessonID}
		if err := tx.Create(completion).Error; err != nil {
			return err
		}

		lesson, err := s.LessonRepo.FindByID(test.LessonID)
		if err != nil {
			return err
		}
		return recomputeProgress(tx, userID, lesson.CourseID)
	})
	if err != nil {
		return nil, err
	}

	result := "failed"
	if passed {
		result = "passed"
	}
	monitoring.GradedAttempts.WithLabelValues(result).Inc()

	return attempt, nil
}

func (s *TestService) Attempts(userID, testID uint) ([]model.TestAttempt, error) {
	return s.TestRepo.ListAttempts(userID, testID)
}

// gradeAnswers 对可计分题型（单选/多选）评分，主观题不参与。
// 得分 = 100 × 获得分值 / 可计分总分值；无可计分题时为 0。
// 缺答或无法解析的答案记 0 分，不报错。
func gradeAnswers(questions []model.Question, answers map[string]interface{}) float64 {
	totalPoints := 0
	earnedPoints := 0

	for _, q := range questions {
		if !q.QuestionType.Gradable() {
			continue
		}
		totalPoints += q.Points

		userAnswer, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if !ok || userAnswer == nil {
			continue
		}

		correctIDs := make(map[uint]bool)
		for _, o := range q.AnswerOptions {
			if o.IsCorrect {
				correctIDs[o.ID] = true
			}
		}

		switch q.QuestionType {
		case model.SingleChoice:
			// 列表取第一个元素
			ans := userAnswer
			if list, isList := userAnswer.([]interface{}); isList {
				if len(list) == 0 {
					continue
				}
				ans = list[0]
			}
			id, valid := coerceOptionID(ans)
			if valid && correctIDs[id] {
				earnedPoints += q.Points
			}

		case model.MultipleChoice:
			list, isList := userAnswer.([]interface{})
			if !isList {
				list = []interface{}{userAnswer}
			}
			submitted := make(map[uint]bool, len(list))
			valid := true
			for _, v := range list {
				id, okID := coerceOptionID(v)
				if !okID {
					valid = false
					break
				}
				submitted[id] = true
			}
			// 必须与正确集合完全一致，不给部分分
			if valid && setsEqual(submitted, correctIDs) {
				earnedPoints += q.Points
			}
		}
	}

	if totalPoints == 0 {
		return 0
	}
	return float64(earnedPoints) / float64(totalPoints) * 100
}

// coerceOptionID 将提交值转换为选项ID；JSON 解码后数值是 float64，也接受数字字符串
func coerceOptionID(v interface{}) (uint, bool) {
	switch val := v.(type) {
	case float64:
		if val < 0 || val != float64(uint(val)) {
			return 0, false
		}
		return uint(val), true
	case int:
		if val < 0 {
			return 0, false
		}
		return uint(val), true
	case string:
		id, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}

func setsEqual(a, b map[uint]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
