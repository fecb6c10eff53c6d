package auditstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApprovalHistory) (id string, err error)
	List(subjectType models.SubjectType, subjectID string) (list []dbmodels.ApprovalHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalHistory) (id string, err error) {
	err = i.db.
		Omit("Approver").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(subjectType models.SubjectType, subjectID string) (list []dbmodels.ApprovalHistory, err error) {
	list = []dbmodels.ApprovalHistory{}
	err = i.db.
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
		Order("created_at ASC").
		Preload("Approver").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
