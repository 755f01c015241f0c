package model

import (
	"encoding/json"
	"time"
)

type QuestionType string

const (
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
	Text           QuestionType = "text"
)

// Gradable 判断题型是否参与计分（主观题不计分）
func (t QuestionType) Gradable() bool {
	return t == SingleChoice || t == MultipleChoice
}

// swagger:model Test
type Test struct {
	BaseModel
	LessonID         uint       `gorm:"index;not null" json:"lessonId"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	PassingScore     float64    `gorm:"not null" json:"passingScore"`
	TimeLimitMinutes *int       `json:"timeLimitMinutes,omitempty"`
	Questions        []Question `gorm:"-" json:"questions,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// swagger:model Question
type Question struct {
	BaseModel
	TestID        uint           `gorm:"index;not null" json:"testId"`
	QuestionText  string         `gorm:"type:text;not null" json:"questionText"`
	QuestionType  QuestionType   `gorm:"size:20;not null" json:"questionType"`
	Points        int            `gorm:"default:1" json:"points"`
	OrderIndex    int            `gorm:"not null;default:0" json:"orderIndex"`
	AnswerOptions []AnswerOption `gorm:"-" json:"answerOptions,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model AnswerOption
type AnswerOption struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	OptionText string `gorm:"type:text;not null" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	OrderIndex int    `gorm:"not null;default:0" json:"orderIndex"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}

// TestAttempt 一次评分事件的不可变记录
// swagger:model TestAttempt
type TestAttempt struct {
	BaseModel
	UserID           uint            `gorm:"index;not null" json:"userId"`
	TestID           uint            `gorm:"index;not null" json:"testId"`
	Score            float64         `gorm:"not null" json:"score"`
	Passed           bool            `gorm:"not null" json:"passed"`
	StartedAt        time.Time       `gorm:"autoCreateTime" json:"startedAt"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
	TimeSpentMinutes *int            `json:"timeSpentMinutes,omitempty"`
	AnswersData      json.RawMessage `gorm:"type:json" json:"answersData,omitempty"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}
