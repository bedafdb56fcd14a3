package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kitchen/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBodyBytes = 4096

// resendSender posts messages to a Resend-compatible REST API.
type resendSender struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// NewResendSender is the constructor for resendSender.
func NewResendSender(apiKey, from, baseURL string, timeout time.Duration, logger *slog.Logger) service.EmailSender {
	return &resendSender{
		apiKey:     apiKey,
		from:       from,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (s *resendSender) SendEmail(ctx context.Context, msg *service.EmailMessage) (*service.EmailReceipt, error) {
	body, err := json.Marshal(resendRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "email API request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("email API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var result resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode email API response")
	}

	s.logger.InfoContext(ctx, "[Email] Sent via API",
		slog.String("email_id", result.ID),
		slog.Int("recipients", len(msg.To)),
	)

	return &service.EmailReceipt{ID: result.ID}, nil
}
