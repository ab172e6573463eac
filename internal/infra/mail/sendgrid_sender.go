package mail

import (
	"context"
	"net/http"

	"sellerhub/config"
	"sellerhub/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers messages through the SendGrid v3 API.
type SendGridSender struct {
	client sendGridClient
	from   *sgmail.Email
}

// NewSendGridSender creates a SendGridSender from the mail configuration.
func NewSendGridSender(cfg *config.MailConfig) (*SendGridSender, error) {
	if cfg == nil || cfg.SendGrid.APIKey == "" || cfg.From == "" {
		return nil, errors.New("sendgrid api key and from address must be provided")
	}

	return &SendGridSender{
		client: sendgrid.NewSendClient(cfg.SendGrid.APIKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.From),
	}, nil
}

// Send posts a single-recipient message.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	message := sgmail.NewSingleEmail(s.from, msg.Subject, to, msg.TextBody, msg.HTMLBody)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
