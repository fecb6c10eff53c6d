package approvalflowstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApprovalFlowStep) (id string, err error)
	ListByType(subjectType models.SubjectType) (list []dbmodels.ApprovalFlowStep, err error)
	DeleteByType(subjectType models.SubjectType) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalFlowStep) (id string, err error) {
	err = i.db.
		Omit("Approver").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByType(subjectType models.SubjectType) (list []dbmodels.ApprovalFlowStep, err error) {
	list = []dbmodels.ApprovalFlowStep{}
	err = i.db.
		Where("subject_type = ?", subjectType).
		Order("step_order ASC").
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

func (i impl) DeleteByType(subjectType models.SubjectType) error {
	err := i.db.
		Where("subject_type = ?", subjectType).
		Delete(&dbmodels.ApprovalFlowStep{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
