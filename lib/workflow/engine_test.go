package workflowhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	subjectstore "hr-missions-backend/lib/workflow/subject-store"
	"hr-missions-backend/models"
	workflowapimodels "hr-missions-backend/models/api/workflow"
	dbmodels "hr-missions-backend/models/db"
)

type mockFlows struct {
	steps []dbmodels.ApprovalFlowStep
}

func (m *mockFlows) LoadFlow(subjectType models.SubjectType) ([]dbmodels.ApprovalFlowStep, error) {
	return m.steps, nil
}

func (m *mockFlows) Get(subjectType models.SubjectType) ([]workflowapimodels.FlowStepView, error) {
	return nil, nil
}

func (m *mockFlows) Save(subjectType models.SubjectType, steps []workflowapimodels.FlowStepData) (string, error) {
	return "", nil
}

type mockRecords struct {
	list   []dbmodels.ValidationRecord
	nextID int
}

func (m *mockRecords) Create(rec dbmodels.ValidationRecord) (string, error) {
	m.nextID++
	rec.ID = fmt.Sprintf("rec-%v", m.nextID)
	m.list = append(m.list, rec)
	return rec.ID, nil
}

func (m *mockRecords) GetPending(subjectType models.SubjectType, subjectID string) (*dbmodels.ValidationRecord, error) {
	for idx := range m.list {
		rec := m.list[idx]
		if rec.SubjectType == subjectType && rec.SubjectID == subjectID && rec.State == models.AStatePending {
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *mockRecords) Update(id string, updMap map[string]interface{}) error {
	for idx := range m.list {
		if m.list[idx].ID != id {
			continue
		}
		if state, ok := updMap["State"]; ok {
			m.list[idx].State = state.(models.ApprovalState)
		}
		if comment, ok := updMap["Comment"]; ok {
			m.list[idx].Comment = comment.(string)
		}
		if decidedAt, ok := updMap["DecidedAt"]; ok {
			m.list[idx].DecidedAt = decidedAt.(*time.Time)
		}
		return nil
	}
	return errors.New("запись не найдена")
}

func (m *mockRecords) List(subjectType models.SubjectType, subjectID string) ([]dbmodels.ValidationRecord, error) {
	return m.list, nil
}

func (m *mockRecords) pendingCount() int {
	count := 0
	for _, rec := range m.list {
		if rec.State == models.AStatePending {
			count++
		}
	}
	return count
}

type mockSubjects struct {
	subject *subjectstore.Subject
}

func (m *mockSubjects) GetForUpdate(subjectType models.SubjectType, id string) (*subjectstore.Subject, error) {
	if m.subject == nil || m.subject.ID != id {
		return nil, nil
	}
	copied := *m.subject
	return &copied, nil
}

func (m *mockSubjects) UpdateStatus(subjectType models.SubjectType, id string, status models.RequestStatus) error {
	if m.subject == nil || m.subject.ID != id {
		return errors.New("запись не найдена")
	}
	m.subject.Status = status
	return nil
}

type mockAudit struct {
	list []dbmodels.ApprovalHistory
}

func (m *mockAudit) Create(rec dbmodels.ApprovalHistory) (string, error) {
	m.list = append(m.list, rec)
	return fmt.Sprintf("hist-%v", len(m.list)), nil
}

func (m *mockAudit) List(subjectType models.SubjectType, subjectID string) ([]dbmodels.ApprovalHistory, error) {
	return m.list, nil
}

func newTestEngine(steps []dbmodels.ApprovalFlowStep, status models.RequestStatus) (engine, *mockRecords, *mockSubjects, *mockAudit) {
	records := &mockRecords{}
	subjects := &mockSubjects{
		subject: &subjectstore.Subject{
			ID:       "subj-1",
			Code:     "REC-000001",
			AuthorID: "author-1",
			Status:   status,
		},
	}
	audit := &mockAudit{}
	e := engine{
		flows:    &mockFlows{steps: steps},
		records:  records,
		subjects: subjects,
		audit:    audit,
	}
	return e, records, subjects, audit
}

func twoSteps() []dbmodels.ApprovalFlowStep {
	return []dbmodels.ApprovalFlowStep{
		{SubjectType: models.SubjectRecruitmentRequest, StepOrder: 0, ApproverID: "approver-a"},
		{SubjectType: models.SubjectRecruitmentRequest, StepOrder: 1, ApproverID: "approver-b"},
	}
}

func TestEngineStart(t *testing.T) {
	t.Run("пустая цепочка согласуется автоматически", func(t *testing.T) {
		e, records, subjects, _ := newTestEngine(nil, models.RequestStatusCreated)

		out, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusApproved, out.status)
		require.Equal(t, models.RequestStatusApproved, subjects.subject.Status)
		require.Empty(t, records.list)
		require.Len(t, out.events, 1)
		require.Equal(t, models.EventFullyApproved, out.events[0].event)
		require.Equal(t, "author-1", out.events[0].recipientID)
	})

	t.Run("первый этап становится ожидающим", func(t *testing.T) {
		e, records, subjects, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)

		out, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusPending, out.status)
		require.Equal(t, models.RequestStatusPending, subjects.subject.Status)
		require.Len(t, records.list, 1)
		require.Equal(t, "approver-a", records.list[0].ApproverID)
		require.Equal(t, 0, records.list[0].StepOrder)
		require.Equal(t, models.AStatePending, records.list[0].State)
		require.Len(t, out.events, 2)
		require.Equal(t, models.EventSubmitted, out.events[0].event)
		require.Equal(t, models.EventAwaitDecision, out.events[1].event)
		require.Equal(t, "approver-a", out.events[1].recipientID)
	})

	t.Run("повторный запуск запрещён", func(t *testing.T) {
		e, _, _, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)

		_, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)
		_, err = e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.ErrorIs(t, err, ErrAlreadyStarted)
	})

	t.Run("сущность не найдена", func(t *testing.T) {
		e, _, _, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)

		_, err := e.start(models.SubjectRecruitmentRequest, "missing")
		require.ErrorIs(t, err, ErrSubjectNotFound)
	})
}

func TestEngineValidate(t *testing.T) {
	t.Run("согласование продвигает цепочку на следующий этап", func(t *testing.T) {
		e, records, subjects, audit := newTestEngine(twoSteps(), models.RequestStatusCreated)
		_, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)

		out, err := e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "ок")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusPending, out.status)
		require.Equal(t, models.RequestStatusPending, subjects.subject.Status)

		require.Len(t, records.list, 2)
		require.Equal(t, models.AStateApproved, records.list[0].State)
		require.NotNil(t, records.list[0].DecidedAt)
		require.Equal(t, "approver-b", records.list[1].ApproverID)
		require.Equal(t, models.AStatePending, records.list[1].State)
		require.Equal(t, 1, records.pendingCount())

		require.Len(t, audit.list, 1)
		require.Equal(t, models.AStateApproved, audit.list[0].State)

		require.Len(t, out.events, 2)
		require.Equal(t, models.EventStepApproved, out.events[0].event)
		require.Equal(t, models.EventAwaitDecision, out.events[1].event)
		require.Equal(t, "approver-b", out.events[1].recipientID)
	})

	t.Run("решение принимает только назначенный согласующий", func(t *testing.T) {
		e, _, _, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)
		_, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)

		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-b", "")
		require.ErrorIs(t, err, ErrWrongApprover)

		// после согласования первого этапа прежний согласующий теряет право решать
		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "")
		require.NoError(t, err)
		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "")
		require.ErrorIs(t, err, ErrWrongApprover)
	})

	t.Run("последний этап завершает согласование", func(t *testing.T) {
		e, records, subjects, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)
		_, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)
		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "")
		require.NoError(t, err)

		out, err := e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-b", "")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusApproved, out.status)
		require.Equal(t, models.RequestStatusApproved, subjects.subject.Status)
		require.Equal(t, 0, records.pendingCount())
		require.Len(t, out.events, 1)
		require.Equal(t, models.EventFullyApproved, out.events[0].event)

		// решение по завершённой заявке не принимается
		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-b", "")
		require.ErrorIs(t, err, ErrAlreadyFinalized)
	})

	t.Run("без запуска согласования этапов нет", func(t *testing.T) {
		e, _, _, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)

		_, err := e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "")
		require.ErrorIs(t, err, ErrNoPendingStep)
	})
}

func TestEngineReject(t *testing.T) {
	t.Run("отклонение требует комментария", func(t *testing.T) {
		e, _, _, _ := newTestEngine(twoSteps(), models.RequestStatusCreated)
		_, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)

		_, err = e.reject(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "   ")
		require.ErrorIs(t, err, ErrCommentRequired)
	})

	t.Run("отклонение останавливает цепочку", func(t *testing.T) {
		e, records, subjects, audit := newTestEngine(twoSteps(), models.RequestStatusCreated)
		_, err := e.start(models.SubjectRecruitmentRequest, "subj-1")
		require.NoError(t, err)
		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-a", "")
		require.NoError(t, err)

		out, err := e.reject(models.SubjectRecruitmentRequest, "subj-1", "approver-b", "бюджет исчерпан")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusRejected, out.status)
		require.Equal(t, models.RequestStatusRejected, subjects.subject.Status)

		// новые этапы после отклонения не создаются
		require.Len(t, records.list, 2)
		require.Equal(t, 0, records.pendingCount())
		require.Equal(t, models.AStateRejected, records.list[1].State)
		require.Equal(t, "бюджет исчерпан", records.list[1].Comment)

		require.Len(t, audit.list, 2)
		require.Equal(t, models.AStateRejected, audit.list[1].State)

		require.Len(t, out.events, 1)
		require.Equal(t, models.EventRejected, out.events[0].event)
		require.Equal(t, "author-1", out.events[0].recipientID)

		// отклонение окончательно
		_, err = e.validate(models.SubjectRecruitmentRequest, "subj-1", "approver-b", "")
		require.ErrorIs(t, err, ErrAlreadyFinalized)
		_, err = e.reject(models.SubjectRecruitmentRequest, "subj-1", "approver-b", "ещё раз")
		require.ErrorIs(t, err, ErrAlreadyFinalized)
	})
}
