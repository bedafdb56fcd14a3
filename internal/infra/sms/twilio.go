// Package sms sends text messages through the Twilio REST API.
package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/service"
	"kitchen/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL    = "https://api.twilio.com"
	defaultTimeout    = 15 * time.Second
	maxErrorBodyBytes = 4096
)

// twilioSender talks to the Messages and Accounts resources directly.
type twilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type twilioMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioAccountResponse struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
}

type twilioErrorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

// Params holds dependencies for the SMS sender
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTwilioSender always returns a sender; Configured reports whether it can actually send.
func NewTwilioSender(params Params) service.SMSSender {
	cfg := params.Config.Twilio
	if cfg == nil {
		cfg = &config.TwilioConfig{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &twilioSender{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}
}

func (s *twilioSender) Configured() bool {
	return s.accountSID != "" && s.authToken != "" && s.fromNumber != ""
}

// SendSMS posts one message. Twilio answers 201 Created on acceptance.
func (s *twilioSender) SendSMS(ctx context.Context, to, body string) (*service.SMSResult, error) {
	if !s.Configured() {
		return nil, errors.New("twilio credentials are not configured")
	}

	form := url.Values{}
	form.Set("From", s.fromNumber)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := s.baseURL + "/2010-04-01/Accounts/" + url.PathEscape(s.accountSID) + "/Messages.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "twilio request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeTwilioError(resp)
	}

	var message twilioMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		return nil, errors.Wrap(err, "failed to decode twilio response")
	}

	s.logger.InfoContext(ctx, "[SMS] Message accepted",
		slog.String("to", util.MaskPhoneNumber(to)),
		slog.String("sid", message.SID),
		slog.String("status", message.Status),
	)

	return &service.SMSResult{SID: message.SID, Status: message.Status}, nil
}

// VerifyCredentials fetches the account resource, which requires valid credentials.
func (s *twilioSender) VerifyCredentials(ctx context.Context) (*service.SMSAccount, error) {
	if s.accountSID == "" || s.authToken == "" {
		return nil, errors.New("twilio credentials are not configured")
	}

	endpoint := s.baseURL + "/2010-04-01/Accounts/" + url.PathEscape(s.accountSID) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "twilio request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeTwilioError(resp)
	}

	var account twilioAccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, errors.Wrap(err, "failed to decode twilio account")
	}

	return &service.SMSAccount{
		SID:          account.SID,
		FriendlyName: account.FriendlyName,
		Status:       account.Status,
	}, nil
}

func decodeTwilioError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var apiErr twilioErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return errors.Errorf("twilio returned %d (code %d): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
	}

	return errors.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}

// Module provides the SMS FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTwilioSender),
)
