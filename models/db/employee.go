package dbmodels

import "hr-missions-backend/models"

type Employee struct {
	BaseModel
	Code       string          `gorm:"type:varchar(32);uniqueIndex"`
	FirstName  string          `gorm:"type:varchar(255)"`
	LastName   string          `gorm:"type:varchar(255)"`
	Email      string          `gorm:"type:varchar(255);uniqueIndex"`
	Password   string          `gorm:"type:varchar(255)"`
	Role       models.UserRole `gorm:"type:varchar(100)"`
	JobTitle   string          `gorm:"type:varchar(255)"`
	Department string          `gorm:"type:varchar(255)"`
	IsActive   bool            `gorm:"default:true"`
}

func (e Employee) GetFullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	return e.FirstName + " " + e.LastName
}
