package db

import (
	"github.com/mindmentor/mindmentor/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

type JournalWithTags struct {
	Journal models.Journal
	Tags    []string
}

// CreateWithTags persists the journal and its tag links as one atomic unit.
// Tag names must already be normalized and deduplicated. Both the tag upsert
// and the link insert tolerate concurrent creation of the same name through
// unique-constraint conflict handling rather than locks.
func (repo *JournalRepository) CreateWithTags(journal *models.Journal, tagNames []string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(journal).Error; err != nil {
			return err
		}

		for _, name := range tagNames {
			tag := models.Tag{Name: name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&tag).Error; err != nil {
				return err
			}
			if tag.ID == 0 {
				// Conflict path: the name already existed, fetch its id.
				if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
					return err
				}
			}

			link := models.JournalTag{JournalID: journal.ID, TagID: tag.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ListByUser returns the caller's journals ordered by creation time
// descending, with tag names resolved per entry in lexical order.
func (repo *JournalRepository) ListByUser(userID string, limit int, offset int) ([]JournalWithTags, error) {
	journals := make([]models.Journal, 0, limit)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&journals).Error; err != nil {
		return nil, err
	}

	entries := make([]JournalWithTags, 0, len(journals))
	if len(journals) == 0 {
		return entries, nil
	}

	journalIDs := make([]string, 0, len(journals))
	for _, journal := range journals {
		journalIDs = append(journalIDs, journal.ID)
	}

	tagsByJournal, err := repo.tagNamesByJournal(journalIDs)
	if err != nil {
		return nil, err
	}

	for _, journal := range journals {
		tags := tagsByJournal[journal.ID]
		if tags == nil {
			tags = []string{}
		}
		entries = append(entries, JournalWithTags{Journal: journal, Tags: tags})
	}
	return entries, nil
}

type journalTagNameRow struct {
	JournalID string `gorm:"column:journal_id"`
	Name      string `gorm:"column:name"`
}

func (repo *JournalRepository) tagNamesByJournal(journalIDs []string) (map[string][]string, error) {
	rows := make([]journalTagNameRow, 0)
	if err := repo.database.
		Table("journal_tags").
		Select("journal_tags.journal_id, tags.name").
		Joins("JOIN tags ON tags.id = journal_tags.tag_id").
		Where("journal_tags.journal_id IN ?", journalIDs).
		Order("tags.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	tagsByJournal := make(map[string][]string, len(journalIDs))
	for _, row := range rows {
		tagsByJournal[row.JournalID] = append(tagsByJournal[row.JournalID], row.Name)
	}
	return tagsByJournal, nil
}

// DeleteOwned deletes the journal only when it belongs to userID. A journal
// that is absent and a journal owned by someone else are indistinguishable to
// the caller: both surface as gorm.ErrRecordNotFound.
func (repo *JournalRepository) DeleteOwned(userID string, journalID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", journalID, userID).Delete(&models.Journal{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// Link rows cascade at the database level; clearing them here keeps
		// the invariant even where foreign key enforcement is off.
		return tx.Where("journal_id = ?", journalID).Delete(&models.JournalTag{}).Error
	})
}
