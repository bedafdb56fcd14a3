package auth

import (
	"context"
	"log/slog"

	"kitchen/config"
	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IdentityParams holds dependencies for the identity provider
type IdentityParams struct {
	fx.In

	Ctx            context.Context
	Config         *config.Config
	Logger         *slog.Logger
	FirebaseApp    *firebase.App `optional:"true"`
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
}

// NewIdentityProvider selects the identity backend from auth.identityProvider.
func NewIdentityProvider(params IdentityParams) (service.IdentityProvider, error) {
	cfg := params.Config.Auth

	switch cfg.IdentityProvider {
	case constants.IdentityProviderLocal, "":
		params.Logger.Info("Using local identity provider")

		return NewLocalIdentityProvider(params.CredentialRepo, params.Hasher), nil

	case constants.IdentityProviderFirebase:
		var verifier IDTokenVerifier
		if params.FirebaseApp != nil {
			client, err := params.FirebaseApp.Auth(params.Ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create firebase auth client")
			}
			verifier = client
		} else {
			params.Logger.Warn("Firebase app not configured, ID token login disabled")
		}
		params.Logger.Info("Using firebase identity provider")

		return NewFirebaseIdentityProvider(cfg.FirebaseAPIKey, cfg.IdentityToolkitURL, verifier, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.IdentityProvider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewJWTService,
		NewBcryptHasher,
		NewIdentityProvider,
	),
)
