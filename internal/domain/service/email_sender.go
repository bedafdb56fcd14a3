package service

import (
	"context"
)

// EmailMessage is a provider-neutral outgoing email.
type EmailMessage struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// EmailReceipt reports how a message was handled.
type EmailReceipt struct {
	ID        string
	Simulated bool // true when no real provider is configured and the message was only logged
}

// EmailSender hands messages to a mail transport.
type EmailSender interface {
	SendEmail(ctx context.Context, msg *EmailMessage) (*EmailReceipt, error)
}
