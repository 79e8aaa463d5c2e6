package models

import "time"

const (
	SessionTypeChat     = "chat"
	SessionTypeCheckin  = "checkin"
	SessionTypeExercise = "exercise"
)

const (
	MessageRoleUser   = "user"
	MessageRoleMentor = "mentor"
	MessageRoleSystem = "system"
)

// Session and Message have no write endpoints yet; the schema is reserved for
// the mentoring flows and participates in account deletion.
type Session struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"not null;index"`
	SessionType string `gorm:"not null"`
	StartedAt   time.Time
	EndedAt     *time.Time
}

type Message struct {
	ID        string `gorm:"primaryKey"`
	SessionID string `gorm:"not null;index"`
	Role      string `gorm:"not null"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
}
