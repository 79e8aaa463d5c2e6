package services

import (
	"github.com/mindmentor/mindmentor/internal/db"
	"github.com/mindmentor/mindmentor/internal/security"
)

type AccountService struct {
	users *db.UserRepository
}

func NewAccountService(users *db.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// DeleteAccount re-confirms the password before wiping the account and all
// data it owns in one transaction.
func (service *AccountService) DeleteAccount(userID string, password string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	return service.users.DeleteAccountAndRelatedData(userID)
}
