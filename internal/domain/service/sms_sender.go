package service

import (
	"context"
)

// SMSAccount describes the provider account behind the SMS credentials.
type SMSAccount struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendlyName"`
	Status       string `json:"status"`
}

// SMSResult is what the provider reports for an accepted message.
type SMSResult struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// SMSSender sends text messages through an external provider.
type SMSSender interface {
	// Configured reports whether credentials and a sender number are present.
	Configured() bool

	SendSMS(ctx context.Context, to, body string) (*SMSResult, error)

	// VerifyCredentials fetches the account to prove the credentials work.
	VerifyCredentials(ctx context.Context) (*SMSAccount, error)
}
