package model

import "time"

// LessonCompletion 课时完成记录，(user, lesson) 唯一。
// 只创建和删除，从不更新；撤销走硬删，所以不带软删除字段。
// swagger:model LessonCompletion
type LessonCompletion struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint      `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID         uint      `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	CompletedAt      time.Time `gorm:"autoCreateTime" json:"completedAt"`
	TimeSpentMinutes *int      `json:"timeSpentMinutes,omitempty"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}
