package notification

import (
	"context"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// NoopSender implements the PushSender interface without delivering anything.
// Used when Firebase is disabled and in tests.
type NoopSender struct {
	logger coreport.Logger
}

// NewNoopSender creates a new no-op push sender
func NewNoopSender(logger coreport.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// Send logs the notification instead of delivering it
func (s *NoopSender) Send(ctx context.Context, notification entity.PushNotification) error {
	s.logger.Debug("Push delivery disabled, dropping notification", map[string]any{
		"title": notification.Title,
	})
	return nil
}
