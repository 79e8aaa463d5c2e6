package services

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindmentor/mindmentor/internal/db"
	"github.com/mindmentor/mindmentor/internal/models"
	"github.com/mindmentor/mindmentor/internal/security"
	"gorm.io/gorm"
)

const (
	passwordMinLength    = 8
	displayNameMaxLength = 120
)

type AuthService struct {
	users  *db.UserRepository
	tokens *security.TokenManager
}

func NewAuthService(users *db.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account. Email uniqueness is case-insensitive: the
// pre-check catches the common path, and a unique violation on create covers
// the race between two concurrent registrations of the same address.
func (service *AuthService) Register(email string, displayName string, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	displayName = strings.TrimSpace(displayName)
	if err := validateRegistration(email, displayName, password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalizeEmail(email))
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token whose subject is
// the user id. Unknown emails and wrong passwords are indistinguishable;
// anything other than a missing row is an infrastructure failure and is
// passed through unchanged.
func (service *AuthService) Login(email string, password string) (string, error) {
	user, err := service.users.FindByNormalizedEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return service.tokens.Issue(user.ID)
}

// ResolveUser loads the user a bearer token stands for.
func (service *AuthService) ResolveUser(rawToken string) (models.User, error) {
	subject, err := service.tokens.Verify(rawToken)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	user, err := service.users.FindByID(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func validateRegistration(email string, displayName string, password string) error {
	if email == "" {
		return validationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationError("invalid email address")
	}
	if len(password) < passwordMinLength {
		return validationError("password must be at least 8 characters")
	}
	if len(displayName) > displayNameMaxLength {
		return validationError("display name is too long")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
