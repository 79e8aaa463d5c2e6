package db

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/mindmentor/mindmentor/internal/models"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "mindmentor-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func countRows(t *testing.T, database *gorm.DB, model any) int64 {
	t.Helper()

	var total int64
	if err := database.Model(model).Count(&total).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return total
}
