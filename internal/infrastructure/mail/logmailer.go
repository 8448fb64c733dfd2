// Package mail provides mailer.Mailer implementations. Real delivery is an
// external collaborator; the log mailer stands in wherever SMTP is not wired.
package mail

import (
	"context"
	"strings"

	"juridicol/internal/domain/mailer"
	"juridicol/pkg/logger"
)

// LogMailer writes outbound mail to the log instead of delivering it.
type LogMailer struct{}

var _ mailer.Mailer = (*LogMailer)(nil)

// NewLogMailer creates a log-only mailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send implements mailer.Mailer.
func (m *LogMailer) Send(ctx context.Context, msg mailer.Message) error {
	logger.Info(ctx, "outbound mail (log only)",
		"to", strings.Join(msg.To, ","),
		"subject", msg.Subject,
		"bytes", len(msg.Body),
	)
	return nil
}
