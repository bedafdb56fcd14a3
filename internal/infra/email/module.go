package email

import (
	"context"
	"log/slog"

	"kitchen/config"
	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMailCollection = "mail"

// Params holds dependencies for the email sender
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewEmailSender picks the transport named by email.provider.
// A resend provider without an API key degrades to the log sender.
func NewEmailSender(params Params) (service.EmailSender, error) {
	cfg := params.Config.Email
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.EmailProviderLog {
		logger.Info("Using log-only email sender")

		return NewLogSender(logger), nil
	}

	switch cfg.Provider {
	case constants.EmailProviderFirestore:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase must be configured for the firestore email provider")
		}

		client, err := params.FirebaseApp.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create firestore client")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		collection := cfg.MailCollection
		if collection == "" {
			collection = defaultMailCollection
		}
		logger.Info("Using firestore mail queue", slog.String("collection", collection))

		return NewFirestoreSender(client, collection, logger), nil

	case constants.EmailProviderResend:
		if cfg.ResendAPIKey == "" {
			logger.Warn("Email API key missing, emails will be simulated")

			return NewLogSender(logger), nil
		}
		logger.Info("Using email API sender", slog.String("base_url", cfg.ResendBaseURL))

		return NewResendSender(cfg.ResendAPIKey, cfg.From, cfg.ResendBaseURL, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}

// Module provides the email FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEmailSender),
)
