package missionhandler

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-missions-backend/db"
	employeestore "hr-missions-backend/lib/employee/store"
	filestorage "hr-missions-backend/lib/file-storage"
	missionstore "hr-missions-backend/lib/mission/store"
	notificationhandler "hr-missions-backend/lib/notification"
	"hr-missions-backend/lib/sequence"
	workflowhandler "hr-missions-backend/lib/workflow"
	"hr-missions-backend/models"
	missionapimodels "hr-missions-backend/models/api/mission"
	dbmodels "hr-missions-backend/models/db"
)

type Provider interface {
	Create(userID string, data missionapimodels.MissionData) (id string, err error)
	GetByID(id string) (item missionapimodels.MissionView, err error)
	List(filter missionapimodels.MissionFilter) (list []missionapimodels.MissionView, rowCount int64, err error)
	Validate(id, approverID, comment string) (models.RequestStatus, error)
	Reject(id, approverID, comment string) (models.RequestStatus, error)
	MarkInProgress(id string) error
	AddExpense(ctx context.Context, id string, data missionapimodels.ExpenseData, receiptName string, receipt io.Reader, receiptSize int64) (expenseID string, err error)
	SetCompensationPaid(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         missionstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		issuer:        sequence.Instance,
		notifier:      notificationhandler.Instance,
	}
}

type notifier interface {
	Notify(recipientID string, event models.NotificationEvent, subjectType models.SubjectType, subjectID, message string)
}

type impl struct {
	store         missionstore.Provider
	employeeStore employeestore.Provider
	issuer        sequence.Provider
	notifier      notifier
}

func (i impl) Create(userID string, data missionapimodels.MissionData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	assignee, err := i.employeeStore.GetByID(data.AssigneeID)
	if err != nil {
		return "", err
	}
	if assignee == nil {
		return "", errors.New("командируемый сотрудник не найден в справочнике")
	}
	code, err := i.issuer.Issue(db.SeqMissionID, "MIS", sequence.DefaultSuffixLength, sequence.DefaultSeparator)
	if err != nil {
		return "", err
	}
	rec := dbmodels.MissionAssignation{
		Code:        code,
		AuthorID:    userID,
		AssigneeID:  data.AssigneeID,
		Destination: data.Destination,
		Purpose:     data.Purpose,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Status:      models.RequestStatusCreated,
	}
	var emitEvents workflowhandler.Deferred
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := missionstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("Ошибка создания командировки")
			return err
		}
		_, err = store.SaveCompensation(dbmodels.MissionCompensation{
			MissionID: id,
			PayState:  models.PayStateNotPaid,
		})
		if err != nil {
			return err
		}
		_, emitEvents, err = workflowhandler.NewHandlerWithTx(tx).Start(models.SubjectMissionAssignation, id)
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
		Info("Создана командировка")
	return id, nil
}

func (i impl) GetByID(id string) (item missionapimodels.MissionView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return missionapimodels.MissionView{}, err
	}
	return missionapimodels.MissionConvert(*rec), nil
}

func (i impl) List(filter missionapimodels.MissionFilter) (list []missionapimodels.MissionView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []missionapimodels.MissionView{}, rowCount, nil
	}

	recList, err := i.store.List(filter)
	if err != nil {
		log.
			WithError(err).
			Error("ошибка получения списка командировок")
		return nil, 0, err
	}
	result := make([]missionapimodels.MissionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, missionapimodels.MissionConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Validate(id, approverID, comment string) (models.RequestStatus, error) {
	return workflowhandler.Instance.Validate(models.SubjectMissionAssignation, id, approverID, comment)
}

func (i impl) Reject(id, approverID, comment string) (models.RequestStatus, error) {
	return workflowhandler.Instance.Reject(models.SubjectMissionAssignation, id, approverID, comment)
}

// MarkInProgress командировка начата; допустимо только после согласования
func (i impl) MarkInProgress(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status != models.RequestStatusApproved {
		return errors.Errorf("перевод в работу недопустим в текущем статусе: %v", rec.Status.ToHuman())
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.RequestStatusInProgress,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статуса командировки")
		return err
	}
	logger.Info("командировка переведена в работу")
	return nil
}

func (i impl) AddExpense(ctx context.Context, id string, data missionapimodels.ExpenseData, receiptName string, receipt io.Reader, receiptSize int64) (expenseID string, err error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	if rec.Status != models.RequestStatusApproved && rec.Status != models.RequestStatusInProgress {
		return "", errors.Errorf("добавление расходов недопустимо в текущем статусе: %v", rec.Status.ToHuman())
	}
	receiptKey := ""
	if receipt != nil && receiptSize > 0 {
		receiptKey = fmt.Sprintf("receipts/%s/%s%s", rec.Code, uuid.NewString(), path.Ext(receiptName))
		err = filestorage.Instance.UploadFile(ctx, receiptKey, receipt, receiptSize, "")
		if err != nil {
			logger.WithError(err).Error("ошибка загрузки чека")
			return "", err
		}
	}
	expenseID, err = i.store.AddExpense(dbmodels.MissionExpense{
		MissionID:  id,
		Kind:       data.Kind,
		Amount:     data.Amount,
		Currency:   data.Currency,
		ReceiptKey: receiptKey,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения расхода")
		return "", err
	}
	logger.
		WithField("expense_id", expenseID).
		Info("добавлен расход по командировке")
	return expenseID, nil
}

// SetCompensationPaid фиксирует выплату компенсации в размере суммы расходов.
// Проверка и запись идут под блокировкой строки командировки, повторная
// выплата при одновременных запросах невозможна
func (i impl) SetCompensationPaid(id string) error {
	logger := log.WithField("rec_id", id)
	var rec *dbmodels.MissionAssignation
	var amount float64
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		rec, amount, err = i.setCompensationPaid(missionstore.NewInstance(tx), id)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("ошибка фиксации выплаты компенсации")
		return err
	}
	if i.notifier != nil {
		i.notifier.Notify(rec.AssigneeID, models.EventCompensationPaid,
			models.SubjectMissionAssignation, id,
			fmt.Sprintf("По командировке %s выплачена компенсация %.2f", rec.Code, amount))
	}
	logger.Info("компенсация выплачена")
	return nil
}

func (i impl) setCompensationPaid(store missionstore.Provider, id string) (rec *dbmodels.MissionAssignation, amount float64, err error) {
	rec, err = store.GetByIDForUpdate(id)
	if err != nil {
		return nil, 0, err
	}
	if rec == nil {
		return nil, 0, errors.Wrapf(workflowhandler.ErrSubjectNotFound, "id=%v", id)
	}
	if rec.Status != models.RequestStatusApproved && rec.Status != models.RequestStatusInProgress {
		return nil, 0, errors.Errorf("выплата компенсации недопустима в текущем статусе: %v", rec.Status.ToHuman())
	}
	if rec.Compensation != nil && rec.Compensation.PayState == models.PayStatePaid {
		return nil, 0, errors.New("компенсация уже выплачена")
	}
	for _, exp := range rec.Expenses {
		amount += exp.Amount
	}
	now := time.Now()
	err = store.UpdateCompensation(id, map[string]interface{}{
		"Amount":   amount,
		"PayState": models.PayStatePaid,
		"PaidAt":   &now,
	})
	if err != nil {
		return nil, 0, err
	}
	return rec, amount, nil
}

func (i impl) getRec(id string) (*dbmodels.MissionAssignation, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения командировки")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(workflowhandler.ErrSubjectNotFound, "id=%v", id)
	}
	return rec, nil
}
