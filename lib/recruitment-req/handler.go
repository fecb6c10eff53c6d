package recruitmentreqhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-missions-backend/db"
	employeestore "hr-missions-backend/lib/employee/store"
	recruitmentreqstore "hr-missions-backend/lib/recruitment-req/store"
	"hr-missions-backend/lib/sequence"
	workflowhandler "hr-missions-backend/lib/workflow"
	"hr-missions-backend/models"
	recruitmentapimodels "hr-missions-backend/models/api/recruitment"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(userID string, data recruitmentapimodels.RecruitmentRequestData) (id string, err error)
	GetByID(id string) (item recruitmentapimodels.RecruitmentRequestView, err error)
	Update(id string, data recruitmentapimodels.RecruitmentRequestData) error
	List(filter recruitmentapimodels.RecruitmentRequestFilter) (list []recruitmentapimodels.RecruitmentRequestView, rowCount int64, err error)
	Validate(id, approverID, comment string) (models.RequestStatus, error)
	Reject(id, approverID, comment string) (models.RequestStatus, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         recruitmentreqstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		issuer:        sequence.Instance,
	}
}

type impl struct {
	store         recruitmentreqstore.Provider
	employeeStore employeestore.Provider
	issuer        sequence.Provider
}

func (i impl) Create(userID string, data recruitmentapimodels.RecruitmentRequestData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	author, err := i.employeeStore.GetByID(userID)
	if err != nil {
		return "", err
	}
	if author == nil {
		return "", errors.New("автор не найден в справочнике сотрудников")
	}
	code, err := i.issuer.Issue(db.SeqRecruitmentRequestID, "REC", sequence.DefaultSuffixLength, sequence.DefaultSeparator)
	if err != nil {
		return "", err
	}
	rec := dbmodels.RecruitmentRequest{
		Code:            code,
		AuthorID:        userID,
		Position:        data.Position,
		Department:      data.Department,
		OpenedPositions: data.OpenedPositions,
		Justification:   data.Justification,
		Status:          models.RequestStatusCreated,
	}
	var emitEvents workflowhandler.Deferred
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := recruitmentreqstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("Ошибка создания заявки на подбор")
			return err
		}
		_, emitEvents, err = workflowhandler.NewHandlerWithTx(tx).Start(models.SubjectRecruitmentRequest, id)
		return err
	})
	if err != nil {
		return "", err
	}
	// уведомления только после коммита
	emitEvents()
	logger.
		WithField("rec_id", id).
		WithField("code", code).
		Info("Создана заявка на подбор")
	return id, nil
}

func (i impl) GetByID(id string) (item recruitmentapimodels.RecruitmentRequestView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return recruitmentapimodels.RecruitmentRequestView{}, err
	}
	return recruitmentapimodels.RecruitmentRequestConvert(*rec), nil
}

func (i impl) Update(id string, data recruitmentapimodels.RecruitmentRequestData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowEdit() {
		return errors.Errorf("правка заявки недопустима в текущем статусе: %v", rec.Status.ToHuman())
	}
	updMap := map[string]interface{}{
		"Position":        data.Position,
		"Department":      data.Department,
		"OpenedPositions": data.OpenedPositions,
		"Justification":   data.Justification,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления заявки на подбор")
		return err
	}
	logger.Info("обновлена заявка на подбор")
	return nil
}

func (i impl) List(filter recruitmentapimodels.RecruitmentRequestFilter) (list []recruitmentapimodels.RecruitmentRequestView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []recruitmentapimodels.RecruitmentRequestView{}, rowCount, nil
	}

	recList, err := i.store.List(filter)
	if err != nil {
		log.
			WithError(err).
			Error("ошибка получения списка заявок на подбор")
		return nil, 0, err
	}
	result := make([]recruitmentapimodels.RecruitmentRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, recruitmentapimodels.RecruitmentRequestConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Validate(id, approverID, comment string) (models.RequestStatus, error) {
	return workflowhandler.Instance.Validate(models.SubjectRecruitmentRequest, id, approverID, comment)
}

func (i impl) Reject(id, approverID, comment string) (models.RequestStatus, error) {
	return workflowhandler.Instance.Reject(models.SubjectRecruitmentRequest, id, approverID, comment)
}

func (i impl) getRec(id string) (*dbmodels.RecruitmentRequest, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения заявки на подбор")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(workflowhandler.ErrSubjectNotFound, "id=%v", id)
	}
	return rec, nil
}
