package db_models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	WorkoutPlans []WorkoutPlan `gorm:"foreignKey:UserID" json:"-"`
	Workouts     []Workout     `gorm:"foreignKey:UserID" json:"-"`
	ChatSessions []ChatSession `gorm:"foreignKey:UserID" json:"-"`
}
