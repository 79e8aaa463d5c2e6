package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindmentor/mindmentor/internal/db"
	"github.com/mindmentor/mindmentor/internal/models"
	"gorm.io/gorm"
)

const (
	listLimitDefault = 50
	listLimitMax     = 200
)

type JournalService struct {
	journals *db.JournalRepository
}

func NewJournalService(journals *db.JournalRepository) *JournalService {
	return &JournalService{journals: journals}
}

// Create validates the entry, normalizes its tags and persists everything as
// one atomic unit. The returned entry carries the normalized tag names.
func (service *JournalService) Create(userID string, content string, mood *int, tags []string) (db.JournalWithTags, error) {
	if strings.TrimSpace(content) == "" {
		return db.JournalWithTags{}, validationError("content is required")
	}
	if mood != nil && (*mood < models.MoodMin || *mood > models.MoodMax) {
		return db.JournalWithTags{}, validationError("mood must be between 1 and 10")
	}

	tagNames := NormalizeTagNames(tags)
	journal := models.Journal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Mood:      mood,
		CreatedAt: time.Now(),
	}
	if err := service.journals.CreateWithTags(&journal, tagNames); err != nil {
		return db.JournalWithTags{}, err
	}
	return db.JournalWithTags{Journal: journal, Tags: tagNames}, nil
}

// List returns the caller's journals newest first. The limit is clamped to
// [1, 200] with a default of 50; negative offsets are treated as zero.
func (service *JournalService) List(userID string, limit int, offset int) ([]db.JournalWithTags, error) {
	if limit <= 0 {
		limit = listLimitDefault
	}
	if limit > listLimitMax {
		limit = listLimitMax
	}
	if offset < 0 {
		offset = 0
	}
	return service.journals.ListByUser(userID, limit, offset)
}

// Delete removes the caller's journal. Absent journals and journals owned by
// another user both come back as ErrJournalNotFound.
func (service *JournalService) Delete(userID string, journalID string) error {
	if err := service.journals.DeleteOwned(userID, journalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJournalNotFound
		}
		return err
	}
	return nil
}

// NormalizeTagNames flattens comma-delimited entries, trims and lowercases
// each name, drops empties and deduplicates while keeping first-seen order.
func NormalizeTagNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name == "" {
				continue
			}
			if _, duplicate := seen[name]; duplicate {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
