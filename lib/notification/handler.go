package notificationhandler

import (
	log "github.com/sirupsen/logrus"
	"hr-missions-backend/config"
	"hr-missions-backend/db"
	employeestore "hr-missions-backend/lib/employee/store"
	notificationstore "hr-missions-backend/lib/notification/store"
	"hr-missions-backend/lib/smtp"
	"hr-missions-backend/models"
	notificationapimodels "hr-missions-backend/models/api/notification"
	dbmodels "hr-missions-backend/models/db"
)

// Provider диспетчер уведомлений. Notify работает по принципу
// fire-and-forget: сбой доставки не влияет на транзакцию согласования
type Provider interface {
	Notify(recipientID string, event models.NotificationEvent, subjectType models.SubjectType, subjectID, message string)
	List(recipientID string, onlyUnread bool) ([]notificationapimodels.NotificationView, error)
	MarkRead(recipientID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         notificationstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) getLogger(recipientID string, event models.NotificationEvent) *log.Entry {
	return log.
		WithField("recipient_id", recipientID).
		WithField("event_code", event)
}

func (i impl) Notify(recipientID string, event models.NotificationEvent, subjectType models.SubjectType, subjectID, message string) {
	logger := i.getLogger(recipientID, event)
	_, err := i.store.Create(dbmodels.Notification{
		RecipientID: recipientID,
		Event:       event,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Message:     message,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
	}
	user, err := i.employeeStore.GetByID(recipientID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сотрудника")
		return
	}
	if user == nil {
		logger.Error("сотрудник не найден")
		return
	}
	if !user.IsActive || user.Email == "" {
		return
	}
	err = smtp.Instance.SendEMail(config.Conf.Smtp.EmailSender, user.Email, message, event.ToHuman())
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма")
	}
}

func (i impl) List(recipientID string, onlyUnread bool) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.List(recipientID, onlyUnread)
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(recipientID, id string) error {
	return i.store.MarkRead(recipientID, id)
}
