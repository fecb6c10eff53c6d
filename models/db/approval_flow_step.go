package dbmodels

import "hr-missions-backend/models"

// ApprovalFlowStep шаг цепочки согласования, настраивается для типа сущности.
// Изменение цепочки не затрагивает уже запущенные согласования
type ApprovalFlowStep struct {
	BaseModel
	SubjectType models.SubjectType `gorm:"type:varchar(100);uniqueIndex:idx_flow_step"`
	StepOrder   int                `gorm:"uniqueIndex:idx_flow_step"`
	ApproverID  string             `gorm:"type:varchar(36)"`
	Approver    *Employee          `gorm:"foreignKey:ApproverID"`
}
