package models

// NotificationEvent код события для диспетчера уведомлений
type NotificationEvent string

const (
	EventSubmitted        NotificationEvent = "SUBMITTED"         // заявка отправлена на согласование
	EventAwaitDecision    NotificationEvent = "AWAIT_DECISION"    // назначен следующий согласующий
	EventStepApproved     NotificationEvent = "STEP_APPROVED"     // этап согласован
	EventFullyApproved    NotificationEvent = "FULLY_APPROVED"    // заявка согласована полностью
	EventRejected         NotificationEvent = "REJECTED"          // заявка отклонена
	EventCompensationPaid NotificationEvent = "COMPENSATION_PAID" // выплачена компенсация
)

var notificationEventHumanName = map[NotificationEvent]string{
	EventSubmitted:        "Отправлено на согласование",
	EventAwaitDecision:    "Ожидает вашего решения",
	EventStepApproved:     "Этап согласован",
	EventFullyApproved:    "Согласовано",
	EventRejected:         "Отклонено",
	EventCompensationPaid: "Компенсация выплачена",
}

func (e NotificationEvent) ToHuman() string {
	if human, exist := notificationEventHumanName[e]; exist {
		return human
	}
	return string(e)
}
