package services

import (
	"context"

	"github.com/dmitrijs2005/keywarden/internal/logging"
)

// Mailer delivers short-lived codes to an account's email address. The
// server never blocks an API response on delivery succeeding.
type Mailer interface {
	SendVerifyCode(ctx context.Context, email string, code string) error
	SendRecoveryCode(ctx context.Context, email string, code string) error
}

// LogMailer writes codes to the server log instead of sending mail. It is
// the development stand-in until an SMTP relay is configured.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(logger logging.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendVerifyCode(ctx context.Context, email string, code string) error {
	m.logger.Info(ctx, "verification code issued", "email", email, "code", code)
	return nil
}

func (m *LogMailer) SendRecoveryCode(ctx context.Context, email string, code string) error {
	m.logger.Info(ctx, "recovery code issued", "email", email, "code", code)
	return nil
}
