package workflowhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-missions-backend/db"
	approvalflowhandler "hr-missions-backend/lib/approval-flow"
	auditstore "hr-missions-backend/lib/audit/store"
	notificationhandler "hr-missions-backend/lib/notification"
	validationstore "hr-missions-backend/lib/workflow/store"
	subjectstore "hr-missions-backend/lib/workflow/subject-store"
	"hr-missions-backend/models"
	workflowapimodels "hr-missions-backend/models/api/workflow"
)

// Deferred отложенная отправка уведомлений о переходе; вызывающий
// дёргает её только после коммита своей транзакции
type Deferred func()

// Provider движок согласования. Validate и Reject — единственные точки,
// меняющие статус сущности после запуска цепочки
type Provider interface {
	// Start запускает согласование; вызывается в транзакции создания
	// сущности, уведомления уходят через возвращённый Deferred
	Start(subjectType models.SubjectType, subjectID string) (models.RequestStatus, Deferred, error)
	Validate(subjectType models.SubjectType, subjectID, approverID, comment string) (models.RequestStatus, error)
	Reject(subjectType models.SubjectType, subjectID, approverID, comment string) (models.RequestStatus, error)
	Chain(subjectType models.SubjectType, subjectID string) ([]workflowapimodels.ValidationRecordView, error)
	History(subjectType models.SubjectType, subjectID string) ([]workflowapimodels.ApprovalHistoryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:       db.DB,
		notifier: notificationhandler.Instance,
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:       tx,
		notifier: notificationhandler.Instance,
	}
}

type notifier interface {
	Notify(recipientID string, event models.NotificationEvent, subjectType models.SubjectType, subjectID, message string)
}

type impl struct {
	db       *gorm.DB
	notifier notifier
}

func newEngine(tx *gorm.DB) engine {
	return engine{
		flows:    approvalflowhandler.NewHandlerWithTx(tx),
		records:  validationstore.NewInstance(tx),
		subjects: subjectstore.NewInstance(tx),
		audit:    auditstore.NewInstance(tx),
	}
}

func getLogger(subjectType models.SubjectType, subjectID string) *log.Entry {
	return log.
		WithField("subject_type", subjectType).
		WithField("subject_id", subjectID)
}

func (i impl) Start(subjectType models.SubjectType, subjectID string) (models.RequestStatus, Deferred, error) {
	out, err := newEngine(i.db).start(subjectType, subjectID)
	if err != nil {
		getLogger(subjectType, subjectID).
			WithError(err).
			Error("Ошибка запуска согласования")
		return "", nil, err
	}
	getLogger(subjectType, subjectID).
		WithField("new_status", out.status).
		Info("Согласование запущено")
	return out.status, i.deferredEmit(subjectType, subjectID, out), nil
}

func (i impl) Validate(subjectType models.SubjectType, subjectID, approverID, comment string) (models.RequestStatus, error) {
	var out outcome
	err := i.db.Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = newEngine(tx).validate(subjectType, subjectID, approverID, comment)
		return err
	})
	if err != nil {
		getLogger(subjectType, subjectID).
			WithField("approver_id", approverID).
			WithError(err).
			Error("Ошибка согласования этапа")
		return "", err
	}
	i.emit(subjectType, subjectID, out)
	getLogger(subjectType, subjectID).
		WithField("approver_id", approverID).
		WithField("new_status", out.status).
		Info("Этап согласован")
	return out.status, nil
}

func (i impl) Reject(subjectType models.SubjectType, subjectID, approverID, comment string) (models.RequestStatus, error) {
	var out outcome
	err := i.db.Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = newEngine(tx).reject(subjectType, subjectID, approverID, comment)
		return err
	})
	if err != nil {
		getLogger(subjectType, subjectID).
			WithField("approver_id", approverID).
			WithError(err).
			Error("Ошибка отклонения заявки")
		return "", err
	}
	i.emit(subjectType, subjectID, out)
	getLogger(subjectType, subjectID).
		WithField("approver_id", approverID).
		Info("Заявка отклонена")
	return out.status, nil
}

func (i impl) Chain(subjectType models.SubjectType, subjectID string) ([]workflowapimodels.ValidationRecordView, error) {
	list, err := validationstore.NewInstance(i.db).List(subjectType, subjectID)
	if err != nil {
		return nil, err
	}
	result := make([]workflowapimodels.ValidationRecordView, 0, len(list))
	for _, rec := range list {
		result = append(result, workflowapimodels.ValidationRecordConvert(rec))
	}
	return result, nil
}

func (i impl) History(subjectType models.SubjectType, subjectID string) ([]workflowapimodels.ApprovalHistoryView, error) {
	list, err := auditstore.NewInstance(i.db).List(subjectType, subjectID)
	if err != nil {
		return nil, err
	}
	result := make([]workflowapimodels.ApprovalHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, workflowapimodels.ApprovalHistoryConvert(rec))
	}
	return result, nil
}

func (i impl) deferredEmit(subjectType models.SubjectType, subjectID string, out outcome) Deferred {
	return func() {
		i.emit(subjectType, subjectID, out)
	}
}

// уведомления не должны влиять на результат транзакции согласования
func (i impl) emit(subjectType models.SubjectType, subjectID string, out outcome) {
	if i.notifier == nil {
		return
	}
	for _, ev := range out.events {
		i.notifier.Notify(ev.recipientID, ev.event, subjectType, subjectID, ev.message)
	}
}
