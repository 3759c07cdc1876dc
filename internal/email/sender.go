package email

import (
	"context"
	"errors"
	"time"
)

// Sender define la interfaz de envio de correos de la plataforma.
type Sender interface {
	SendVerificationOTP(ctx context.Context, toEmail string, code string, expiresAt time.Time) error
	SendDiagnosisSummary(ctx context.Context, toEmail string, personalityType string, strengths []string) error
}

type disabledSender struct {
	reason string
}

// NewDisabledSender devuelve un sender que siempre falla con el motivo dado.
// Se usa cuando SMTP no esta configurado.
func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendVerificationOTP(_ context.Context, _ string, _ string, _ time.Time) error {
	return s.err()
}

func (s *disabledSender) SendDiagnosisSummary(_ context.Context, _ string, _ string, _ []string) error {
	return s.err()
}

func (s *disabledSender) err() error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
