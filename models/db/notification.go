package dbmodels

import "hr-missions-backend/models"

type Notification struct {
	BaseModel
	RecipientID string                   `gorm:"type:varchar(36);index"`
	Recipient   *Employee                `gorm:"foreignKey:RecipientID"`
	Event       models.NotificationEvent `gorm:"type:varchar(100)"`
	SubjectType models.SubjectType       `gorm:"type:varchar(100)"`
	SubjectID   string                   `gorm:"type:varchar(36)"`
	Message     string
	Read        bool `gorm:"default:false"`
}
