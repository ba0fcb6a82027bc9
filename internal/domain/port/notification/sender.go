package notification

import (
	"context"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// PushSender delivers a rendered push notification to a device token
type PushSender interface {
	Send(ctx context.Context, notification entity.PushNotification) error
}
