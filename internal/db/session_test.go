package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindmentor/mindmentor/internal/models"
)

func TestSessionConstraintsRejectInvalidRows(t *testing.T) {
	database := openTestDB(t)
	user := seedUser(t, database, "mentee@example.com")

	started := time.Now().UTC().Truncate(time.Second)
	ended := started.Add(30 * time.Minute)
	valid := models.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		SessionType: models.SessionTypeChat,
		StartedAt:   started,
		EndedAt:     &ended,
	}
	if err := database.Create(&valid).Error; err != nil {
		t.Fatalf("create valid session: %v", err)
	}

	backwards := started.Add(-time.Hour)
	cases := []struct {
		name    string
		session models.Session
	}{
		{
			name: "ended before started",
			session: models.Session{
				ID:          uuid.NewString(),
				UserID:      user.ID,
				SessionType: models.SessionTypeChat,
				StartedAt:   started,
				EndedAt:     &backwards,
			},
		},
		{
			name: "unknown session type",
			session: models.Session{
				ID:          uuid.NewString(),
				UserID:      user.ID,
				SessionType: "therapy",
				StartedAt:   started,
			},
		},
	}

	for _, testCase := range cases {
		if err := database.Create(&testCase.session).Error; err == nil {
			t.Fatalf("%s: expected a constraint violation", testCase.name)
		}
	}
	if total := countRows(t, database, &models.Session{}); total != 1 {
		t.Fatalf("expected only the valid session to persist, got %d rows", total)
	}
}
