package dbmodels

import "hr-missions-backend/models"

// ApprovalHistory аудит решений по согласованию; Snapshot формирует сама
// сущность через Loggable
type ApprovalHistory struct {
	BaseModel
	SubjectType models.SubjectType   `gorm:"type:varchar(100);index:idx_history_subject"`
	SubjectID   string               `gorm:"type:varchar(36);index:idx_history_subject"`
	RecordID    string               `gorm:"type:varchar(36)"`
	ApproverID  string               `gorm:"type:varchar(36)"`
	Approver    *Employee            `gorm:"foreignKey:ApproverID"`
	State       models.ApprovalState `gorm:"type:varchar(100)"`
	Comment     string
	Changes     Snapshot `gorm:"type:jsonb"`
}
