//go:build integration || e2e

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "user-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: "$2a$04$testhash",
		CreatedAt:    now,
		LastLoginAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, created_at, last_login_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.LastLoginAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return u
}

// SeedReadings inserts one reading per value on consecutive days ending
// at last, oldest first.
func SeedReadings(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, last time.Time, values ...float64) []domain.Reading {
	t.Helper()

	out := make([]domain.Reading, len(values))
	for i, v := range values {
		date := last.AddDate(0, 0, i-len(values)+1)
		out[i] = domain.Reading{ID: uuid.New(), UserID: userID, Date: date, KWh: v, CreatedAt: date}

		_, err := pool.Exec(context.Background(),
			`INSERT INTO consumption_readings (id, user_id, date, consumption_kwh, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			out[i].ID, userID, date, v, date,
		)
		if err != nil {
			t.Fatalf("testhelper: seed reading: %v", err)
		}
	}
	return out
}
