package model

import "time"

// Enrollment 选课记录，(user, course) 唯一。
// 不使用软删除：课程删除时级联硬删，保证唯一索引不阻塞重新选课。
// swagger:model Enrollment
type Enrollment struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID           uint       `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	EnrolledAt         time.Time  `gorm:"autoCreateTime" json:"enrolledAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	ProgressPercentage float64    `gorm:"default:0" json:"progressPercentage"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
