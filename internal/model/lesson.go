package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID        uint   `gorm:"index;not null" json:"courseId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Content         string `gorm:"type:text" json:"content"`
	VideoURL        string `gorm:"size:255" json:"videoUrl"`
	OrderIndex      int    `gorm:"not null;default:0" json:"orderIndex"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
