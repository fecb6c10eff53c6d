package dbmodels

import (
	"strconv"
	"time"

	"hr-missions-backend/models"
)

type MissionAssignation struct {
	BaseModel
	Code         string    `gorm:"type:varchar(32);uniqueIndex"`
	AuthorID     string    `gorm:"type:varchar(36)"`
	Author       *Employee `gorm:"foreignKey:AuthorID"`
	AssigneeID   string    `gorm:"type:varchar(36)"`
	Assignee     *Employee `gorm:"foreignKey:AssigneeID"`
	Destination  string    `gorm:"type:varchar(255)"`
	Purpose      string
	StartDate    time.Time
	EndDate      time.Time
	Status       models.RequestStatus `gorm:"type:varchar(100)"`
	Expenses     []MissionExpense     `gorm:"foreignKey:MissionID"`
	Compensation *MissionCompensation `gorm:"foreignKey:MissionID"`
}

type MissionExpense struct {
	BaseModel
	MissionID  string `gorm:"type:varchar(36);index"`
	Kind       string `gorm:"type:varchar(100)"`
	Amount     float64
	Currency   string `gorm:"type:varchar(10)"`
	ReceiptKey string `gorm:"type:varchar(255)"`
}

type MissionCompensation struct {
	BaseModel
	MissionID string `gorm:"type:varchar(36);uniqueIndex"`
	Amount    float64
	PayState  models.PayState `gorm:"type:varchar(100)"`
	PaidAt    *time.Time
}

func (m MissionAssignation) AuditSnapshot() Snapshot {
	return Snapshot{
		"code":        m.Code,
		"author_id":   m.AuthorID,
		"assignee_id": m.AssigneeID,
		"destination": m.Destination,
		"start_date":  m.StartDate.Format(time.DateOnly),
		"end_date":    m.EndDate.Format(time.DateOnly),
		"expenses":    strconv.Itoa(len(m.Expenses)),
		"status":      string(m.Status),
	}
}
