package usecase

import (
	"context"
	"time"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase authenticates staff and admins and materializes their user records.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// LoginWithIDToken exchanges an identity provider ID token for an access token.
	LoginWithIDToken(ctx context.Context, idToken string) (*LoginOutput, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
