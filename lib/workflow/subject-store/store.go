package subjectstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

// Subject проекция общих полей сущности, проходящей согласование.
// Статус сущности меняется только через движок согласования
type Subject struct {
	ID       string
	Code     string
	AuthorID string
	Status   models.RequestStatus
	Snapshot dbmodels.Snapshot
}

type Provider interface {
	// GetForUpdate читает сущность с блокировкой строки до конца транзакции
	GetForUpdate(subjectType models.SubjectType, id string) (rec *Subject, err error)
	UpdateStatus(subjectType models.SubjectType, id string, status models.RequestStatus) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetForUpdate(subjectType models.SubjectType, id string) (*Subject, error) {
	switch subjectType {
	case models.SubjectRecruitmentRequest:
		rec := dbmodels.RecruitmentRequest{}
		err := i.db.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&rec).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &Subject{
			ID:       rec.ID,
			Code:     rec.Code,
			AuthorID: rec.AuthorID,
			Status:   rec.Status,
			Snapshot: rec.AuditSnapshot(),
		}, nil
	case models.SubjectMissionAssignation:
		rec := dbmodels.MissionAssignation{}
		err := i.db.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&rec).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &Subject{
			ID:       rec.ID,
			Code:     rec.Code,
			AuthorID: rec.AuthorID,
			Status:   rec.Status,
			Snapshot: rec.AuditSnapshot(),
		}, nil
	}
	return nil, errors.Errorf("неизвестный тип сущности: %v", subjectType)
}

func (i impl) UpdateStatus(subjectType models.SubjectType, id string, status models.RequestStatus) error {
	var model interface{}
	switch subjectType {
	case models.SubjectRecruitmentRequest:
		model = &dbmodels.RecruitmentRequest{}
	case models.SubjectMissionAssignation:
		model = &dbmodels.MissionAssignation{}
	default:
		return errors.Errorf("неизвестный тип сущности: %v", subjectType)
	}
	tx := i.db.
		Model(model).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
