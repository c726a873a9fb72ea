// Package email sends the order notification to the store owner through the
// transactional provider. The provider is a black box behind Sender: one
// subject, one HTML body, success or failure.
package email

import (
	"context"
	"errors"

	"github.com/wneessen/go-mail"
)

// ErrNoAPIKey is returned by every send when the provider key is missing.
var ErrNoAPIKey = errors.New("RESEND_API_KEY is not set")

// Resend's SMTP bridge; the API key is the SMTP password.
const (
	smtpHost = "smtp.resend.com"
	smtpPort = 587
	smtpUser = "resend"
)

// Sender delivers one HTML email to the fixed store-owner recipient.
type Sender interface {
	Send(ctx context.Context, subject, html string) error
}

// ResendSender sends through Resend over SMTP with a fixed sender and
// recipient. No queuing, no retry on transient failure.
type ResendSender struct {
	From   string
	To     string
	APIKey string
}

// NewResendSender returns a sender; a missing API key is not fatal here, it
// just makes every Send fail.
func NewResendSender(from, to, apiKey string) *ResendSender {
	return &ResendSender{From: from, To: to, APIKey: apiKey}
}

func (s *ResendSender) Send(ctx context.Context, subject, html string) error {
	if s.APIKey == "" {
		return ErrNoAPIKey
	}

	msg := mail.NewMsg()
	if err := msg.From(s.From); err != nil {
		return err
	}
	if err := msg.To(s.To); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(smtpHost,
		mail.WithPort(smtpPort),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(smtpUser),
		mail.WithPassword(s.APIKey),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}
