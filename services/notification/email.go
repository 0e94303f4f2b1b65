package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender sends HTML email through the Resend API.
type ResendEmailSender struct {
	client  *resend.Client
	from    string
	replyTo string
}

// NewResendEmailSender builds a sender; with an empty API key the sender
// reports unconfigured and every channel attempt is skipped.
func NewResendEmailSender(apiKey, from, replyTo string) *ResendEmailSender {
	s := &ResendEmailSender{from: from, replyTo: replyTo}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

func (s *ResendEmailSender) Configured() bool {
	return s.client != nil
}

func (s *ResendEmailSender) Send(ctx context.Context, to, subject, html string) error {
	if s.client == nil {
		return fmt.Errorf("resend client not configured")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		ReplyTo: s.replyTo,
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}
