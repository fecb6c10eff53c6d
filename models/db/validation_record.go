package dbmodels

import (
	"time"

	"hr-missions-backend/models"
)

// ValidationRecord одна запись на пару (сущность, этап); запись создаётся
// при достижении этапа и никогда не удаляется
type ValidationRecord struct {
	BaseModel
	SubjectType models.SubjectType   `gorm:"type:varchar(100);index:idx_validation_subject"`
	SubjectID   string               `gorm:"type:varchar(36);index:idx_validation_subject"`
	ApproverID  string               `gorm:"type:varchar(36)"`
	Approver    *Employee            `gorm:"foreignKey:ApproverID"`
	StepOrder   int
	State       models.ApprovalState `gorm:"type:varchar(100)"`
	Comment     string
	DecidedAt   *time.Time
}
