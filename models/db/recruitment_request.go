package dbmodels

import (
	"strconv"

	"hr-missions-backend/models"
)

type RecruitmentRequest struct {
	BaseModel
	Code            string    `gorm:"type:varchar(32);uniqueIndex"`
	AuthorID        string    `gorm:"type:varchar(36)"`
	Author          *Employee `gorm:"foreignKey:AuthorID"`
	Position        string    `gorm:"type:varchar(255)"`
	Department      string    `gorm:"type:varchar(255)"`
	OpenedPositions int
	Justification   string
	Status          models.RequestStatus `gorm:"type:varchar(100)"`
}

func (r RecruitmentRequest) AuditSnapshot() Snapshot {
	return Snapshot{
		"code":             r.Code,
		"author_id":        r.AuthorID,
		"position":         r.Position,
		"department":       r.Department,
		"opened_positions": strconv.Itoa(r.OpenedPositions),
		"status":           string(r.Status),
	}
}
