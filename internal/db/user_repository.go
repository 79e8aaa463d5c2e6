package db

import (
	"github.com/mindmentor/mindmentor/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, "id = ?", userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Emails are stored trimmed, so lower(email) alone matches the
// uidx_users_email_lower index expression. Callers pass normalized input.
func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(email) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(email) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// DeleteAccountAndRelatedData removes the user and everything the account
// owns in one transaction: messages through sessions, sessions, journal tag
// links through journals, journals, reminders, then the user row itself.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		sessionIDs := tx.Model(&models.Session{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("session_id IN (?)", sessionIDs).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
			return err
		}

		journalIDs := tx.Model(&models.Journal{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("journal_id IN (?)", journalIDs).Delete(&models.JournalTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Journal{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}
