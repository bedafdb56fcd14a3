// Package email delivers order emails through a Firestore mail queue, the Resend API or the log.
package email

import (
	"context"
	"log/slog"

	"kitchen/internal/domain/service"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// firestoreSender writes to the collection watched by the Trigger Email extension,
// which performs the actual SMTP delivery.
type firestoreSender struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewFirestoreSender is the constructor for firestoreSender.
func NewFirestoreSender(client *firestore.Client, collection string, logger *slog.Logger) service.EmailSender {
	return &firestoreSender{
		client:     client,
		collection: collection,
		logger:     logger,
	}
}

func (s *firestoreSender) SendEmail(ctx context.Context, msg *service.EmailMessage) (*service.EmailReceipt, error) {
	doc := map[string]any{
		"to": msg.To,
		"message": map[string]any{
			"subject": msg.Subject,
			"text":    msg.Text,
			"html":    msg.HTML,
		},
		"createdAt": firestore.ServerTimestamp,
	}

	ref, _, err := s.client.Collection(s.collection).Add(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to queue email document")
	}

	s.logger.InfoContext(ctx, "[Email] Queued email document",
		slog.String("collection", s.collection),
		slog.String("document_id", ref.ID),
		slog.Int("recipients", len(msg.To)),
	)

	return &service.EmailReceipt{ID: ref.ID}, nil
}
