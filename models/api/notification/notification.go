package notificationapimodels

import (
	"time"

	"hr-missions-backend/models"
	dbmodels "hr-missions-backend/models/db"
)

type NotificationView struct {
	ID          string                   `json:"id"`
	Event       models.NotificationEvent `json:"event"`
	EventHuman  string                   `json:"event_human"`
	SubjectType models.SubjectType       `json:"subject_type"`
	SubjectID   string                   `json:"subject_id"`
	Message     string                   `json:"message"`
	Read        bool                     `json:"read"`
	CreatedAt   time.Time                `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:          rec.ID,
		Event:       rec.Event,
		EventHuman:  rec.Event.ToHuman(),
		SubjectType: rec.SubjectType,
		SubjectID:   rec.SubjectID,
		Message:     rec.Message,
		Read:        rec.Read,
		CreatedAt:   rec.CreatedAt,
	}
}
