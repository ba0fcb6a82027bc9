package worker

import (
	"context"
	"fmt"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/notification"
)

// PushNotifier delivers rendered push notifications. Delivery errors are
// logged here and never surface to the emitter.
type PushNotifier struct {
	sender notification.PushSender
	logger coreport.Logger
}

// NewPushNotifier creates a new push notification worker
func NewPushNotifier(sender notification.PushSender, logger coreport.Logger) *PushNotifier {
	return &PushNotifier{
		sender: sender,
		logger: logger,
	}
}

// HandleSend dispatches a push notification to its device token
func (w *PushNotifier) HandleSend(ctx context.Context, payload any) {
	note, ok := payload.(entity.PushNotification)
	if !ok {
		w.logger.Error("Unexpected payload type for push notification", map[string]any{
			"payload": fmt.Sprintf("%T", payload),
		})
		return
	}

	w.logger.Debug("Sending push notification", map[string]any{
		"title": note.Title,
	})

	if err := w.sender.Send(ctx, note); err != nil {
		w.logger.Error("Failed to send push notification", map[string]any{
			"title": note.Title,
			"error": err.Error(),
		})
	}
}
