package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// FCMSender implements the PushSender interface using Firebase Cloud Messaging
type FCMSender struct {
	client *messaging.Client
	logger coreport.Logger
}

// NewFCMSender initializes the Firebase app from a service account credentials
// file and returns a sender backed by its messaging client
func NewFCMSender(ctx context.Context, credentialsFile string, logger coreport.Logger) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	logger.Info("Firebase app initialized", nil)

	return &FCMSender{
		client: client,
		logger: logger,
	}, nil
}

// Send delivers one push notification to the device addressed by its token
func (s *FCMSender) Send(ctx context.Context, notification entity.PushNotification) error {
	message := &messaging.Message{
		Token: notification.Token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}

	s.logger.Debug("Push notification sent", map[string]any{
		"title":    notification.Title,
		"response": response,
	})
	return nil
}
