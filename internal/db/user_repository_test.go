package db

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mindmentor/mindmentor/internal/models"
	"gorm.io/gorm"
)

func TestCreateDuplicateEmailReportsDuplicatedKey(t *testing.T) {
	database := openTestDB(t)
	repo := NewUserRepository(database)
	seedUser(t, database, "taken@example.com")

	duplicate := models.User{
		ID:           uuid.NewString(),
		Email:        "Taken@Example.com",
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	err := repo.Create(&duplicate)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey for a duplicate email, got %v", err)
	}
	if total := countRows(t, database, &models.User{}); total != 1 {
		t.Fatalf("expected the duplicate insert to leave 1 user, got %d", total)
	}
}

func TestFindByNormalizedEmailMatchesStoredCasing(t *testing.T) {
	database := openTestDB(t)
	repo := NewUserRepository(database)
	seeded := seedUser(t, database, "Mixed.Case@Example.com")

	found, err := repo.FindByNormalizedEmail("mixed.case@example.com")
	if err != nil {
		t.Fatalf("find by normalized email: %v", err)
	}
	if found.ID != seeded.ID {
		t.Fatalf("expected user %s, got %s", seeded.ID, found.ID)
	}

	if _, err := repo.FindByNormalizedEmail("absent@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found for an absent email, got %v", err)
	}
}
