package employeehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"hr-missions-backend/db"
	employeestore "hr-missions-backend/lib/employee/store"
	"hr-missions-backend/lib/sequence"
	employeeapimodels "hr-missions-backend/models/api/employee"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (id string, err error)
	GetByID(id string) (item employeeapimodels.EmployeeView, err error)
	Update(id string, data employeeapimodels.EmployeeData) error
	List() (list []employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:  employeestore.NewInstance(db.DB),
		issuer: sequence.Instance,
	}
}

type impl struct {
	store  employeestore.Provider
	issuer sequence.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeData) (id string, err error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", errors.New("сотрудник с таким email уже существует")
	}
	code, err := i.issuer.Issue(db.SeqEmployeeID, "EMP", sequence.DefaultSuffixLength, sequence.DefaultSeparator)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.Employee{
		Code:       code,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Email:      data.Email,
		Password:   string(hash),
		Role:       data.Role,
		JobTitle:   data.JobTitle,
		Department: data.Department,
		IsActive:   true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания сотрудника")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("code", code).
		Info("Создан сотрудник")
	return id, nil
}

func (i impl) GetByID(id string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, errors.New("сотрудник не найден")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"FirstName":  data.FirstName,
		"LastName":   data.LastName,
		"Role":       data.Role,
		"JobTitle":   data.JobTitle,
		"Department": data.Department,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления сотрудника")
		return err
	}
	logger.Info("обновлён сотрудник")
	return nil
}

func (i impl) List() (list []employeeapimodels.EmployeeView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, nil
}
