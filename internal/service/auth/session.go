package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
	"github.com/heartmarshall/energymonitor-backend/pkg/ctxutil"
)

// Profile returns the user registered under email.
func (s *Service) Profile(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth.Profile: %w", err)
	}
	return user, nil
}

// ValidateToken turns a bearer token into the caller's session.
func (s *Service) ValidateToken(_ context.Context, token string) (ctxutil.Session, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return ctxutil.Session{}, fmt.Errorf("auth.ValidateToken: %w: %w", domain.ErrUnauthorized, err)
	}
	return ctxutil.Session{UserID: claims.UserID, Email: claims.Email}, nil
}
