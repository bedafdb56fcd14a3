package email

import (
	"context"
	"log/slog"

	"kitchen/internal/domain/service"
)

// logSender only logs messages. Used when no mail transport is configured.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendEmail(ctx context.Context, msg *service.EmailMessage) (*service.EmailReceipt, error) {
	s.logger.InfoContext(ctx, "[Email] No provider configured, email simulated",
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return &service.EmailReceipt{Simulated: true}, nil
}
