package validationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ValidationRecord) (id string, err error)
	GetPending(subjectType models.SubjectType, subjectID string) (rec *dbmodels.ValidationRecord, err error)
	Update(id string, updMap map[string]interface{}) error
	List(subjectType models.SubjectType, subjectID string) (list []dbmodels.ValidationRecord, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ValidationRecord) (id string, err error) {
	err = i.db.
		Omit("Approver").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetPending(subjectType models.SubjectType, subjectID string) (*dbmodels.ValidationRecord, error) {
	rec := dbmodels.ValidationRecord{}
	err := i.db.
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
		Where("state = ?", models.AStatePending).
		Preload("Approver").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ValidationRecord{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) List(subjectType models.SubjectType, subjectID string) (list []dbmodels.ValidationRecord, err error) {
	list = []dbmodels.ValidationRecord{}
	err = i.db.
		Where("subject_type = ?", subjectType).
		Where("subject_id = ?", subjectID).
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
