package missionhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	missionstore "hr-missions-backend/lib/mission/store"
	workflowhandler "hr-missions-backend/lib/workflow"
	"hr-missions-backend/models"
	missionapimodels "hr-missions-backend/models/api/mission"
	dbmodels "hr-missions-backend/models/db"
)

type mockMissionStore struct {
	rec     *dbmodels.MissionAssignation
	updates []map[string]interface{}
}

func (m *mockMissionStore) Create(rec dbmodels.MissionAssignation) (string, error) {
	return rec.ID, nil
}

func (m *mockMissionStore) GetByID(id string) (*dbmodels.MissionAssignation, error) {
	return m.GetByIDForUpdate(id)
}

func (m *mockMissionStore) GetByIDForUpdate(id string) (*dbmodels.MissionAssignation, error) {
	if m.rec == nil || m.rec.ID != id {
		return nil, nil
	}
	return m.rec, nil
}

func (m *mockMissionStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (m *mockMissionStore) List(filter missionapimodels.MissionFilter) ([]dbmodels.MissionAssignation, error) {
	return nil, nil
}

func (m *mockMissionStore) ListCount(filter missionapimodels.MissionFilter) (int64, error) {
	return 0, nil
}

func (m *mockMissionStore) AddExpense(rec dbmodels.MissionExpense) (string, error) {
	return rec.ID, nil
}

func (m *mockMissionStore) SaveCompensation(rec dbmodels.MissionCompensation) (string, error) {
	return rec.ID, nil
}

func (m *mockMissionStore) UpdateCompensation(missionID string, updMap map[string]interface{}) error {
	m.updates = append(m.updates, updMap)
	if payState, ok := updMap["PayState"]; ok {
		if m.rec.Compensation == nil {
			m.rec.Compensation = &dbmodels.MissionCompensation{MissionID: missionID}
		}
		m.rec.Compensation.PayState = payState.(models.PayState)
	}
	return nil
}

func paidTestStore(status models.RequestStatus) *mockMissionStore {
	return &mockMissionStore{
		rec: &dbmodels.MissionAssignation{
			BaseModel:  dbmodels.BaseModel{ID: "mis-1"},
			Code:       "MIS-000001",
			AssigneeID: "assignee-1",
			Status:     status,
			Expenses: []dbmodels.MissionExpense{
				{Kind: "проезд", Amount: 1200.50, Currency: "RUB"},
				{Kind: "проживание", Amount: 4300, Currency: "RUB"},
			},
			Compensation: &dbmodels.MissionCompensation{
				MissionID: "mis-1",
				PayState:  models.PayStateNotPaid,
			},
		},
	}
}

func TestSetCompensationPaid(t *testing.T) {
	t.Run("выплата в размере суммы расходов", func(t *testing.T) {
		store := paidTestStore(models.RequestStatusInProgress)
		i := impl{}

		rec, amount, err := i.setCompensationPaid(store, "mis-1")
		require.NoError(t, err)
		require.Equal(t, "assignee-1", rec.AssigneeID)
		require.Equal(t, 5500.50, amount)
		require.Len(t, store.updates, 1)
		require.Equal(t, models.PayStatePaid, store.updates[0]["PayState"])
	})

	t.Run("повторная выплата отклоняется", func(t *testing.T) {
		store := paidTestStore(models.RequestStatusInProgress)
		i := impl{}

		_, _, err := i.setCompensationPaid(store, "mis-1")
		require.NoError(t, err)

		// второй вызов видит выплаченную компенсацию и не пишет ничего
		_, _, err = i.setCompensationPaid(store, "mis-1")
		require.Error(t, err)
		require.Len(t, store.updates, 1)
	})

	t.Run("до согласования выплата недопустима", func(t *testing.T) {
		store := paidTestStore(models.RequestStatusPending)
		i := impl{}

		_, _, err := i.setCompensationPaid(store, "mis-1")
		require.Error(t, err)
		require.Empty(t, store.updates)
	})

	t.Run("командировка не найдена", func(t *testing.T) {
		store := &mockMissionStore{}
		i := impl{}

		_, _, err := i.setCompensationPaid(store, "missing")
		require.ErrorIs(t, err, workflowhandler.ErrSubjectNotFound)
	})
}

var _ missionstore.Provider = (*mockMissionStore)(nil)
