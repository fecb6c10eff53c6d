package approvalflowhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"hr-missions-backend/models"
	workflowapimodels "hr-missions-backend/models/api/workflow"
	dbmodels "hr-missions-backend/models/db"
)

type mockFlowStore struct {
	list   []dbmodels.ApprovalFlowStep
	nextID int
}

func (m *mockFlowStore) Create(rec dbmodels.ApprovalFlowStep) (string, error) {
	m.nextID++
	rec.ID = fmt.Sprintf("step-%v", m.nextID)
	m.list = append(m.list, rec)
	return rec.ID, nil
}

func (m *mockFlowStore) ListByType(subjectType models.SubjectType) ([]dbmodels.ApprovalFlowStep, error) {
	result := []dbmodels.ApprovalFlowStep{}
	for _, rec := range m.list {
		if rec.SubjectType == subjectType {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (m *mockFlowStore) DeleteByType(subjectType models.SubjectType) error {
	result := []dbmodels.ApprovalFlowStep{}
	for _, rec := range m.list {
		if rec.SubjectType != subjectType {
			result = append(result, rec)
		}
	}
	m.list = result
	return nil
}

type mockEmployeeStore struct {
	employees map[string]dbmodels.Employee
}

func (m *mockEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	m.employees[rec.ID] = rec
	return rec.ID, nil
}

func (m *mockEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := m.employees[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *mockEmployeeStore) GetByEmail(email string) (*dbmodels.Employee, error) {
	for _, rec := range m.employees {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *mockEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (m *mockEmployeeStore) List() ([]dbmodels.Employee, error) {
	return nil, nil
}

func newTestHandler() (Provider, *mockFlowStore) {
	store := &mockFlowStore{}
	employees := &mockEmployeeStore{
		employees: map[string]dbmodels.Employee{
			"user-1": {BaseModel: dbmodels.BaseModel{ID: "user-1"}, FirstName: "Иван", LastName: "Петров"},
			"user-2": {BaseModel: dbmodels.BaseModel{ID: "user-2"}, FirstName: "Анна", LastName: "Сидорова"},
		},
	}
	return NewInstance(store, employees), store
}

func TestApprovalFlowSave(t *testing.T) {
	steps := []workflowapimodels.FlowStepData{
		{StepOrder: 0, ApproverID: "user-1"},
		{StepOrder: 1, ApproverID: "user-2"},
	}

	t.Run("сохранение заменяет цепочку", func(t *testing.T) {
		handler, store := newTestHandler()

		hMsg, err := handler.Save(models.SubjectRecruitmentRequest, steps)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, store.list, 2)

		// повторное сохранение не плодит дубликаты
		hMsg, err = handler.Save(models.SubjectRecruitmentRequest, steps[:1])
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, store.list, 1)
	})

	t.Run("неизвестный согласующий", func(t *testing.T) {
		handler, _ := newTestHandler()

		hMsg, err := handler.Save(models.SubjectRecruitmentRequest, []workflowapimodels.FlowStepData{
			{StepOrder: 0, ApproverID: "missing"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run("повтор сотрудника в цепочке", func(t *testing.T) {
		handler, _ := newTestHandler()

		hMsg, err := handler.Save(models.SubjectRecruitmentRequest, []workflowapimodels.FlowStepData{
			{StepOrder: 0, ApproverID: "user-1"},
			{StepOrder: 1, ApproverID: "user-1"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run("повтор номера этапа", func(t *testing.T) {
		handler, _ := newTestHandler()

		hMsg, err := handler.Save(models.SubjectRecruitmentRequest, []workflowapimodels.FlowStepData{
			{StepOrder: 0, ApproverID: "user-1"},
			{StepOrder: 0, ApproverID: "user-2"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run("пустая цепочка допустима", func(t *testing.T) {
		handler, store := newTestHandler()

		hMsg, err := handler.Save(models.SubjectRecruitmentRequest, steps)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		hMsg, err = handler.Save(models.SubjectRecruitmentRequest, nil)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Empty(t, store.list)
	})
}

func TestApprovalFlowLoad(t *testing.T) {
	t.Run("дубликат этапа в хранилище ломает цепочку", func(t *testing.T) {
		handler, store := newTestHandler()
		store.list = []dbmodels.ApprovalFlowStep{
			{SubjectType: models.SubjectRecruitmentRequest, StepOrder: 0, ApproverID: "user-1"},
			{SubjectType: models.SubjectRecruitmentRequest, StepOrder: 0, ApproverID: "user-2"},
		}

		_, err := handler.LoadFlow(models.SubjectRecruitmentRequest)
		require.ErrorIs(t, err, ErrBrokenFlow)
	})

	t.Run("цепочки разных типов независимы", func(t *testing.T) {
		handler, _ := newTestHandler()

		hMsg, err := handler.Save(models.SubjectRecruitmentRequest, []workflowapimodels.FlowStepData{
			{StepOrder: 0, ApproverID: "user-1"},
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		list, err := handler.LoadFlow(models.SubjectMissionAssignation)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
