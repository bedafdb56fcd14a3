package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrIdentityRejected is returned when the provider refuses the presented credentials.
var ErrIdentityRejected = errors.New("identity rejected")

// Identity is a verified principal as reported by the identity provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityProvider authenticates users against an external or local directory.
type IdentityProvider interface {
	// SignInWithPassword verifies an email/password pair.
	SignInWithPassword(ctx context.Context, email, password string) (*Identity, error)

	// VerifyIDToken validates a token minted by the provider's client SDK.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
