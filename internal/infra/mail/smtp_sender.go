package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"sellerhub/config"
	"sellerhub/internal/errors"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers messages through a plain SMTP relay.
type SMTPSender struct {
	addr     string
	auth     smtp.Auth
	from     string
	fromName string
	sendMail sendMailFunc
}

// NewSMTPSender creates an SMTPSender from the mail configuration.
func NewSMTPSender(cfg *config.MailConfig) (*SMTPSender, error) {
	if cfg == nil || cfg.SMTP.Host == "" || cfg.From == "" {
		return nil, errors.New("smtp host and from address must be provided")
	}

	port := cfg.SMTP.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(port)),
		auth:     auth,
		from:     cfg.From,
		fromName: cfg.FromName,
		sendMail: smtp.SendMail,
	}, nil
}

// Send writes an HTML message to the relay. net/smtp has no context support, so ctx is only checked up front.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.sendMail(s.addr, s.auth, s.from, []string{msg.ToEmail}, s.build(msg)); err != nil {
		return errors.Wrap(err, "smtp send failed")
	}

	return nil
}

func (s *SMTPSender) build(msg Message) []byte {
	from := s.from
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", msg.ToEmail)
	fmt.Fprintf(&sb, "Subject: %s\r\n", msg.Subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(msg.HTMLBody)

	return []byte(sb.String())
}
