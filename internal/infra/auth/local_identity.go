package auth

import (
	"context"

	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"

	"github.com/pkg/errors"
)

// localIdentityProvider checks passwords against bcrypt hashes stored in the credentials table.
// It is meant for development and single-site installs without Firebase.
type localIdentityProvider struct {
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
}

// NewLocalIdentityProvider is the constructor for localIdentityProvider.
func NewLocalIdentityProvider(credentialRepo repository.CredentialRepository, hasher service.PasswordHasher) service.IdentityProvider {
	return &localIdentityProvider{
		credentialRepo: credentialRepo,
		hasher:         hasher,
	}
}

func (p *localIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*service.Identity, error) {
	normalized := entity.NormalizeEmail(email)

	credential, err := p.credentialRepo.FindCredentialByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(service.ErrIdentityRejected, "unknown email")
		}

		return nil, err
	}

	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, errors.Wrap(service.ErrIdentityRejected, "password mismatch")
	}

	return &service.Identity{
		UID:   normalized,
		Email: normalized,
	}, nil
}

func (p *localIdentityProvider) VerifyIDToken(_ context.Context, _ string) (*service.Identity, error) {
	return nil, errors.Wrap(service.ErrIdentityRejected, "ID token login requires the firebase identity provider")
}
