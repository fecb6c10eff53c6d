package missionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	missionapimodels "hr-missions-backend/models/api/mission"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MissionAssignation) (id string, err error)
	GetByID(id string) (rec *dbmodels.MissionAssignation, err error)
	// GetByIDForUpdate читает командировку с блокировкой строки до конца транзакции
	GetByIDForUpdate(id string) (rec *dbmodels.MissionAssignation, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter missionapimodels.MissionFilter) (list []dbmodels.MissionAssignation, err error)
	ListCount(filter missionapimodels.MissionFilter) (rowCount int64, err error)
	AddExpense(rec dbmodels.MissionExpense) (id string, err error)
	SaveCompensation(rec dbmodels.MissionCompensation) (id string, err error)
	UpdateCompensation(missionID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MissionAssignation) (id string, err error) {
	err = i.db.
		Omit("Author", "Assignee", "Expenses", "Compensation").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.MissionAssignation, error) {
	rec := dbmodels.MissionAssignation{}
	err := i.db.
		Where("id = ?", id).
		Preload("Author").
		Preload("Assignee").
		Preload("Expenses").
		Preload("Compensation").
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

func (i impl) GetByIDForUpdate(id string) (*dbmodels.MissionAssignation, error) {
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
	err = i.db.
		Where("mission_id = ?", id).
		Find(&rec.Expenses).
		Error
	if err != nil {
		return nil, err
	}
	compensation := dbmodels.MissionCompensation{}
	err = i.db.
		Where("mission_id = ?", id).
		First(&compensation).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		rec.Compensation = &compensation
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.MissionAssignation{}).
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

func (i impl) applyFilter(filter missionapimodels.MissionFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.MissionAssignation{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != "" {
		tx = tx.Where("assignee_id = ?", filter.AssigneeID)
	}
	return tx
}

func (i impl) List(filter missionapimodels.MissionFilter) (list []dbmodels.MissionAssignation, err error) {
	list = []dbmodels.MissionAssignation{}
	page, limit := filter.GetPage()
	err = i.applyFilter(filter).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Author").
		Preload("Assignee").
		Preload("Expenses").
		Preload("Compensation").
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

func (i impl) ListCount(filter missionapimodels.MissionFilter) (rowCount int64, err error) {
	err = i.applyFilter(filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) AddExpense(rec dbmodels.MissionExpense) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) SaveCompensation(rec dbmodels.MissionCompensation) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateCompensation(missionID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.MissionCompensation{}).
		Where("mission_id = ?", missionID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
