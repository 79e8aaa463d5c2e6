package models

import "time"

const (
	ReminderKindDailyCheckin = "daily_checkin"
	ReminderKindExercise     = "exercise"
	ReminderKindCustom       = "custom"
)

const DefaultReminderTimezone = "America/New_York"

type Reminder struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"not null;index"`
	Kind         string `gorm:"not null"`
	ScheduleCron string `gorm:"not null"`
	Timezone     string `gorm:"not null;default:America/New_York"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
