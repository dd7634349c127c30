package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Name and password length bounds for registration.
const (
	MinNameLength     = 2
	MaxNameLength     = 100
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt ignores bytes past 72
	MaxEmailLength    = 254
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// User is a registered dashboard user. PasswordHash never leaves the
// service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  time.Time
}

// IsValidEmail reports whether s looks like an email address. s is expected
// to be normalized already (see NormalizeEmail).
func IsValidEmail(s string) bool {
	return len(s) <= MaxEmailLength && emailPattern.MatchString(s)
}
