package dbmodels

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Loggable сущность сама формирует плоский снимок своих полей для аудита,
// без рефлексии
type Loggable interface {
	AuditSnapshot() Snapshot
}
