package recruitmentreqstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	recruitmentapimodels "hr-missions-backend/models/api/recruitment"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.RecruitmentRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter recruitmentapimodels.RecruitmentRequestFilter) (list []dbmodels.RecruitmentRequest, err error)
	ListCount(filter recruitmentapimodels.RecruitmentRequestFilter) (rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RecruitmentRequest) (id string, err error) {
	err = i.db.
		Omit("Author").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RecruitmentRequest, error) {
	rec := dbmodels.RecruitmentRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Author").
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
		Model(&dbmodels.RecruitmentRequest{}).
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

func (i impl) applyFilter(filter recruitmentapimodels.RecruitmentRequestFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.RecruitmentRequest{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

func (i impl) List(filter recruitmentapimodels.RecruitmentRequestFilter) (list []dbmodels.RecruitmentRequest, err error) {
	list = []dbmodels.RecruitmentRequest{}
	page, limit := filter.GetPage()
	err = i.applyFilter(filter).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Author").
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

func (i impl) ListCount(filter recruitmentapimodels.RecruitmentRequestFilter) (rowCount int64, err error) {
	err = i.applyFilter(filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
