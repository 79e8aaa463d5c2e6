package api

import (
	"github.com/mindmentor/mindmentor/internal/config"
	"github.com/mindmentor/mindmentor/internal/db"
	"github.com/mindmentor/mindmentor/internal/security"
	"github.com/mindmentor/mindmentor/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	authService    *services.AuthService
	journalService *services.JournalService
	accountService *services.AccountService
	loginLimiter   *attemptLimiter
}

func NewHandler(database *gorm.DB, cfg *config.Config) *Handler {
	repositories := db.NewRepositories(database)
	tokens := security.NewTokenManager(cfg.SecretKey, cfg.TokenExpiry)

	return &Handler{
		db:             database,
		authService:    services.NewAuthService(repositories.Users, tokens),
		journalService: services.NewJournalService(repositories.Journals),
		accountService: services.NewAccountService(repositories.Users),
		loginLimiter:   newAttemptLimiter(),
	}
}
