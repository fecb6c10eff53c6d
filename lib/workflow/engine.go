package workflowhandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	approvalflowhandler "hr-missions-backend/lib/approval-flow"
	auditstore "hr-missions-backend/lib/audit/store"
	validationstore "hr-missions-backend/lib/workflow/store"
	subjectstore "hr-missions-backend/lib/workflow/subject-store"
	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

// engine выполняет один переход состояния в рамках транзакции вызывающего;
// строка сущности блокируется до конца транзакции
type engine struct {
	flows    approvalflowhandler.Provider
	records  validationstore.Provider
	subjects subjectstore.Provider
	audit    auditstore.Provider
}

type eventOut struct {
	recipientID string
	event       models.NotificationEvent
	message     string
}

type outcome struct {
	status models.RequestStatus
	events []eventOut
}

func (e engine) start(subjectType models.SubjectType, subjectID string) (outcome, error) {
	subject, err := e.subjects.GetForUpdate(subjectType, subjectID)
	if err != nil {
		return outcome{}, err
	}
	if subject == nil {
		return outcome{}, errors.Wrapf(ErrSubjectNotFound, "id=%v", subjectID)
	}
	if subject.Status != models.RequestStatusCreated {
		return outcome{}, errors.Wrapf(ErrAlreadyStarted, "статус: %v", subject.Status.ToHuman())
	}
	steps, err := e.flows.LoadFlow(subjectType)
	if err != nil {
		return outcome{}, err
	}
	if len(steps) == 0 {
		// пустая цепочка — автосогласование, записи этапов не создаются
		err = e.subjects.UpdateStatus(subjectType, subjectID, models.RequestStatusApproved)
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			status: models.RequestStatusApproved,
			events: []eventOut{
				{
					recipientID: subject.AuthorID,
					event:       models.EventFullyApproved,
					message:     fmt.Sprintf("Заявка %s согласована автоматически", subject.Code),
				},
			},
		}, nil
	}
	first := steps[0]
	_, err = e.records.Create(dbmodels.ValidationRecord{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		ApproverID:  first.ApproverID,
		StepOrder:   first.StepOrder,
		State:       models.AStatePending,
	})
	if err != nil {
		return outcome{}, err
	}
	err = e.subjects.UpdateStatus(subjectType, subjectID, models.RequestStatusPending)
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		status: models.RequestStatusPending,
		events: []eventOut{
			{
				recipientID: subject.AuthorID,
				event:       models.EventSubmitted,
				message:     fmt.Sprintf("Заявка %s отправлена на согласование", subject.Code),
			},
			{
				recipientID: first.ApproverID,
				event:       models.EventAwaitDecision,
				message:     fmt.Sprintf("Заявка %s ожидает вашего решения", subject.Code),
			},
		},
	}, nil
}

func (e engine) validate(subjectType models.SubjectType, subjectID, approverID, comment string) (outcome, error) {
	subject, rec, err := e.currentStep(subjectType, subjectID, approverID)
	if err != nil {
		return outcome{}, err
	}
	now := time.Now()
	err = e.records.Update(rec.ID, map[string]interface{}{
		"State":     models.AStateApproved,
		"Comment":   comment,
		"DecidedAt": &now,
	})
	if err != nil {
		return outcome{}, err
	}
	e.writeAudit(subject, rec, models.AStateApproved, comment)

	next, err := e.nextStep(subjectType, rec.StepOrder)
	if err != nil {
		return outcome{}, err
	}
	if next == nil {
		err = e.subjects.UpdateStatus(subjectType, subjectID, models.RequestStatusApproved)
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			status: models.RequestStatusApproved,
			events: []eventOut{
				{
					recipientID: subject.AuthorID,
					event:       models.EventFullyApproved,
					message:     fmt.Sprintf("Заявка %s согласована", subject.Code),
				},
			},
		}, nil
	}
	_, err = e.records.Create(dbmodels.ValidationRecord{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		ApproverID:  next.ApproverID,
		StepOrder:   next.StepOrder,
		State:       models.AStatePending,
	})
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		status: models.RequestStatusPending,
		events: []eventOut{
			{
				recipientID: subject.AuthorID,
				event:       models.EventStepApproved,
				message:     fmt.Sprintf("Заявка %s: этап %v согласован", subject.Code, rec.StepOrder),
			},
			{
				recipientID: next.ApproverID,
				event:       models.EventAwaitDecision,
				message:     fmt.Sprintf("Заявка %s ожидает вашего решения", subject.Code),
			},
		},
	}, nil
}

func (e engine) reject(subjectType models.SubjectType, subjectID, approverID, comment string) (outcome, error) {
	if strings.TrimSpace(comment) == "" {
		return outcome{}, ErrCommentRequired
	}
	subject, rec, err := e.currentStep(subjectType, subjectID, approverID)
	if err != nil {
		return outcome{}, err
	}
	now := time.Now()
	err = e.records.Update(rec.ID, map[string]interface{}{
		"State":     models.AStateRejected,
		"Comment":   comment,
		"DecidedAt": &now,
	})
	if err != nil {
		return outcome{}, err
	}
	e.writeAudit(subject, rec, models.AStateRejected, comment)

	// цепочка останавливается, новые этапы не создаются
	err = e.subjects.UpdateStatus(subjectType, subjectID, models.RequestStatusRejected)
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		status: models.RequestStatusRejected,
		events: []eventOut{
			{
				recipientID: subject.AuthorID,
				event:       models.EventRejected,
				message:     fmt.Sprintf("Заявка %s отклонена: %s", subject.Code, comment),
			},
		},
	}, nil
}

func (e engine) currentStep(subjectType models.SubjectType, subjectID, approverID string) (*subjectstore.Subject, *dbmodels.ValidationRecord, error) {
	subject, err := e.subjects.GetForUpdate(subjectType, subjectID)
	if err != nil {
		return nil, nil, err
	}
	if subject == nil {
		return nil, nil, errors.Wrapf(ErrSubjectNotFound, "id=%v", subjectID)
	}
	if subject.Status.IsFinal() {
		return nil, nil, errors.Wrapf(ErrAlreadyFinalized, "статус: %v", subject.Status.ToHuman())
	}
	if !subject.Status.AllowDecide() {
		return nil, nil, errors.Wrapf(ErrNoPendingStep, "статус: %v", subject.Status.ToHuman())
	}
	rec, err := e.records.GetPending(subjectType, subjectID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.Wrapf(ErrNoPendingStep, "id=%v", subjectID)
	}
	if rec.ApproverID != approverID {
		return nil, nil, errors.Wrapf(ErrWrongApprover, "этап %v", rec.StepOrder)
	}
	return subject, rec, nil
}

func (e engine) nextStep(subjectType models.SubjectType, currentOrder int) (*dbmodels.ApprovalFlowStep, error) {
	steps, err := e.flows.LoadFlow(subjectType)
	if err != nil {
		return nil, err
	}
	for idx := range steps {
		if steps[idx].StepOrder > currentOrder {
			return &steps[idx], nil
		}
	}
	return nil, nil
}

func (e engine) writeAudit(subject *subjectstore.Subject, rec *dbmodels.ValidationRecord, state models.ApprovalState, comment string) {
	_, err := e.audit.Create(dbmodels.ApprovalHistory{
		SubjectType: rec.SubjectType,
		SubjectID:   rec.SubjectID,
		RecordID:    rec.ID,
		ApproverID:  rec.ApproverID,
		State:       state,
		Comment:     comment,
		Changes:     subject.Snapshot,
	})
	if err != nil {
		getLogger(rec.SubjectType, rec.SubjectID).
			WithError(err).
			Error("Ошибка добавления записи в историю согласования")
	}
}
