package model

type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title           string          `gorm:"size:255;not null;index" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	InstructorID    uint            `gorm:"index;not null" json:"instructorId"`
	DurationHours   int             `gorm:"default:0" json:"durationHours"`
	Category        string          `gorm:"size:100" json:"category"`
	DifficultyLevel DifficultyLevel `gorm:"size:20;default:'beginner'" json:"difficultyLevel"`
	IsPublished     bool            `gorm:"default:false" json:"isPublished"`
}

func (Course) TableName() string {
	return "courses"
}
