package email

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/rs/zerolog"
)

// EmailService defines the interface for transactional emails. Sending is
// best effort: callers log failures and carry on.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, toEmail, toName, roomTitle string) error
	SendPaymentReceipt(ctx context.Context, toEmail string, amount float64, transactionID string) error
}

// MailgunConfig holds configuration for the Mailgun sender
type MailgunConfig struct {
	Enabled bool
	Domain  string
	APIKey  string
	Sender  string
}

// MailgunService implements EmailService over the Mailgun API
type MailgunService struct {
	config MailgunConfig
	client *mailgun.MailgunImpl
	logger zerolog.Logger
}

// NewMailgunService creates a new EmailService. When disabled (or left
// unconfigured) every send becomes a logged no-op, which keeps local
// development free of external calls.
func NewMailgunService(config MailgunConfig, logger zerolog.Logger) *MailgunService {
	s := &MailgunService{config: config, logger: logger}
	if config.Enabled && config.Domain != "" && config.APIKey != "" {
		s.client = mailgun.NewMailgun(config.Domain, config.APIKey)
	}
	return s
}

// SendBookingConfirmation mails the guest after a booking is created
func (s *MailgunService) SendBookingConfirmation(ctx context.Context, toEmail, toName, roomTitle string) error {
	subject := "Booking confirmed"
	body := fmt.Sprintf("Hi %s,\n\nYour booking for %q is confirmed.\n\nThe CourseMart team", toName, roomTitle)
	return s.send(ctx, toEmail, subject, body)
}

// SendPaymentReceipt mails the buyer after a successful payment callback
func (s *MailgunService) SendPaymentReceipt(ctx context.Context, toEmail string, amount float64, transactionID string) error {
	subject := "Payment received"
	body := fmt.Sprintf("We received your payment of %.2f.\nTransaction id: %s\n\nThe CourseMart team", amount, transactionID)
	return s.send(ctx, toEmail, subject, body)
}

func (s *MailgunService) send(ctx context.Context, toEmail, subject, body string) error {
	if s.client == nil {
		s.logger.Debug().Str("to", toEmail).Str("subject", subject).Msg("Email sending disabled, skipping")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	message := s.client.NewMessage(s.config.Sender, subject, body, toEmail)
	_, _, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
