package models

import "time"

const (
	MoodMin = 1
	MoodMax = 10
)

type Journal struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"`
	Content   string `gorm:"not null"`
	Mood      *int
	CreatedAt time.Time
}

// Tag names are normalized to lowercase before they reach storage, so the
// unique index on name doubles as case-insensitive uniqueness.
type Tag struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// JournalTag is the association row between a journal and a tag. Existence
// implies the link; inserting an existing pair is a no-op.
type JournalTag struct {
	JournalID string `gorm:"primaryKey"`
	TagID     uint   `gorm:"primaryKey"`
}
