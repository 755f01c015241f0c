package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

// CreateTest 创建测验及其嵌套的题目与选项
func (r *TestRepository) CreateTest(test *model.Test) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questions := test.Questions
		test.Questions = nil
		if err := tx.Create(test).Error; err != nil {
			return err
		}

		for i := range questions {
			q := &questions[i]
			options := q.AnswerOptions
			q.AnswerOptions = nil
			q.TestID = test.ID
			if err := tx.Create(q).Error; err != nil {
				return err
			}
			for j := range options {
				options[j].QuestionID = q.ID
			}
			if len(options) > 0 {
				if err := tx.Create(&options).Error; err != nil {
					return err
				}
			}
			q.AnswerOptions = options
		}

		test.Questions = questions
		return nil
	})
}

func (r *TestRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.First(&test, id).Error
	return &test, err
}

func (r *TestRepository) ListByLesson(lessonID uint) ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Where("lesson_id = ?", lessonID).Order("id asc").Find(&tests).Error
	return tests, err
}

// ListQuestions 测验的题目（含选项），按题目顺序与选项顺序排列
func (r *TestRepository) ListQuestions(testID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.DB.Where("test_id = ?", testID).Order("order_index asc, id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	questionIDs := make([]uint, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID)
	}

	var options []model.AnswerOption
	if err := r.DB.Where("question_id IN ?", questionIDs).Order("order_index asc, id asc").Find(&options).Error; err != nil {
		return nil, err
	}

	byQuestion := make(map[uint][]model.AnswerOption, len(questions))
	for _, o := range options {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], o)
	}
	for i := range questions {
		questions[i].AnswerOptions = byQuestion[questions[i].ID]
	}

	return questions, nil
}

func (r *TestRepository) ListAttempts(userID, testID uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.DB.Where("test_id = ? AND user_id = ?", testID, userID).
		Order("completed_at desc").Find(&attempts).Error
	return attempts, err
}
