package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/mindmentor/mindmentor/internal/db"
	"github.com/mindmentor/mindmentor/internal/models"
)

type registerInput struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type journalInput struct {
	Content string  `json:"content"`
	Mood    *int    `json:"mood"`
	Tags    tagList `json:"tags"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

// tagList accepts either a list of tag names or a single comma-delimited
// string; normalization downstream splits, trims and deduplicates.
type tagList []string

func (t *tagList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = tagList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*t = tagList(many)
		return nil
	}
	return errors.New("tags must be a string or a list of strings")
}

type userOut struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserOut(user *models.User) userOut {
	return userOut{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type journalOut struct {
	JournalID string    `json:"journal_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Mood      *int      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}

func newJournalOut(entry db.JournalWithTags) journalOut {
	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	return journalOut{
		JournalID: entry.Journal.ID,
		UserID:    entry.Journal.UserID,
		Content:   entry.Journal.Content,
		Mood:      entry.Journal.Mood,
		CreatedAt: entry.Journal.CreatedAt,
		Tags:      tags,
	}
}
