package model

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	FullName string   `gorm:"size:100;not null" json:"fullName"`
	Role     UserRole `gorm:"size:20;default:'student';not null" json:"role"`
}

func (User) TableName() string {
	return "users"
}
