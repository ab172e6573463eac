package mail

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the logger instead of delivering them. Used in development.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogSender{logger: logger}
}

// Send logs the recipient and the plain text body.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "Email not delivered, log provider active",
		slog.String("to", msg.ToEmail),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.TextBody),
	)

	return nil
}
