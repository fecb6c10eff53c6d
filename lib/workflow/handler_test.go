package workflowhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-missions-backend/models"
)

type mockNotifier struct {
	events []models.NotificationEvent
}

func (m *mockNotifier) Notify(recipientID string, event models.NotificationEvent, subjectType models.SubjectType, subjectID, message string) {
	m.events = append(m.events, event)
}

func TestDeferredNotifications(t *testing.T) {
	t.Run("уведомления уходят только после вызова Deferred", func(t *testing.T) {
		m := &mockNotifier{}
		i := impl{notifier: m}

		out := outcome{
			status: models.RequestStatusPending,
			events: []eventOut{
				{recipientID: "author-1", event: models.EventSubmitted, message: "отправлено"},
				{recipientID: "approver-a", event: models.EventAwaitDecision, message: "ожидает решения"},
			},
		}
		emit := i.deferredEmit(models.SubjectRecruitmentRequest, "subj-1", out)

		// до вызова ничего не отправлено, откат транзакции ничего не эмитит
		require.Empty(t, m.events)

		emit()
		require.Equal(t, []models.NotificationEvent{models.EventSubmitted, models.EventAwaitDecision}, m.events)
	})

	t.Run("без диспетчера вызов безопасен", func(t *testing.T) {
		i := impl{}
		emit := i.deferredEmit(models.SubjectRecruitmentRequest, "subj-1", outcome{})
		require.NotPanics(t, func() { emit() })
	})
}
