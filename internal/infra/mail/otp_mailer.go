// Package mail delivers one-time passwords by email.
package mail

import (
	"bytes"
	"context"
	"crypto/rand"
	"html/template"
	"log/slog"
	"math/big"
	"strings"

	"sellerhub/config"
	"sellerhub/internal/domain/entity"
	"sellerhub/internal/domain/service"
	"sellerhub/internal/errors"
)

const defaultOTPLength = 6

// Message is a rendered email ready for a sender.
type Message struct {
	ToName   string
	ToEmail  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender hands a rendered message to a delivery channel.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #1f2937;">
	<p>Hi {{.Name}},</p>
	<p>Your {{.Purpose}} verification code is</p>
	<p style="font-size: 24px; font-weight: bold; letter-spacing: 4px;">{{.Code}}</p>
	<p>If you did not request this code you can ignore this email.</p>
</body>
</html>`))

type otpTemplateData struct {
	Name    string
	Purpose string
	Code    string
}

// otpMailer implements service.OTPMailer on top of a Sender.
type otpMailer struct {
	sender Sender
	length int
}

// NewOTPMailer selects the sender configured under mail.provider.
func NewOTPMailer(cfg *config.Config, logger *slog.Logger) (service.OTPMailer, error) {
	length := defaultOTPLength
	if cfg.OTP != nil && cfg.OTP.Length > 0 {
		length = cfg.OTP.Length
	}

	provider := config.MailProviderLog
	if cfg.Mail != nil && cfg.Mail.Provider != "" {
		provider = strings.ToLower(cfg.Mail.Provider)
	}

	var sender Sender
	switch provider {
	case config.MailProviderLog:
		sender = NewLogSender(logger)
	case config.MailProviderSMTP:
		smtpSender, err := NewSMTPSender(cfg.Mail)
		if err != nil {
			return nil, err
		}
		sender = smtpSender
	case config.MailProviderSendGrid:
		sgSender, err := NewSendGridSender(cfg.Mail)
		if err != nil {
			return nil, err
		}
		sender = sgSender
	default:
		return nil, errors.Errorf("unknown mail provider %q", provider)
	}

	return NewOTPMailerWithSender(sender, length), nil
}

// NewOTPMailerWithSender builds a mailer around an explicit sender.
func NewOTPMailerWithSender(sender Sender, length int) service.OTPMailer {
	if length <= 0 {
		length = defaultOTPLength
	}

	return &otpMailer{sender: sender, length: length}
}

// GenerateOTP returns a uniformly random numeric code.
func (m *otpMailer) GenerateOTP() (string, error) {
	var sb strings.Builder
	sb.Grow(m.length)

	ten := big.NewInt(10)
	for range m.length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate otp")
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}

// SendOTP renders the code for the given purpose and hands it to the sender.
func (m *otpMailer) SendOTP(ctx context.Context, user *entity.User, code string, purpose entity.OTPPurpose) error {
	if user == nil || user.Email == "" {
		return errors.New("otp recipient has no email")
	}

	label := "email"
	if purpose == entity.OTPPurposeGST {
		label = "GST"
	}

	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, otpTemplateData{Name: user.Name, Purpose: label, Code: code}); err != nil {
		return errors.Wrap(err, "failed to render otp email")
	}

	msg := Message{
		ToName:   user.Name,
		ToEmail:  user.Email,
		Subject:  "Your " + label + " verification code",
		HTMLBody: body.String(),
		TextBody: "Your " + label + " verification code is " + code,
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send %s otp", purpose)
	}

	return nil
}
