package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// Notifier delivers a reminder to the coach's device.
type Notifier interface {
	Notify(ctx context.Context, title, body string, data map[string]string)
}

// PushService handles sending push notifications via Firebase Cloud Messaging
type PushService struct {
	client *messaging.Client
}

// Global push service instance
var Push = &PushService{}

// InitPush initializes the Firebase push notification service.
// Push stays disabled, without error, if no service account is configured.
func InitPush(ctx context.Context, serviceAccountPath string) error {
	if serviceAccountPath == "" {
		logger.Log.Info("FCM: no service account configured, push notifications disabled")
		Push = &PushService{}
		return nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		logger.Log.Warn("FCM: failed to initialize Firebase app", "error", err)
		Push = &PushService{}
		return nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Log.Warn("FCM: failed to get messaging client", "error", err)
		Push = &PushService{}
		return nil
	}

	Push = &PushService{client: client}
	logger.Log.Info("FCM: push notifications enabled")
	return nil
}

func (p *PushService) Enabled() bool {
	return p != nil && p.client != nil
}

// Notify sends to the stored device token.
// No-op if push is not configured or no device has registered.
func (p *PushService) Notify(ctx context.Context, title, body string, data map[string]string) {
	if !p.Enabled() {
		return
	}

	token, err := storage.DeviceToken()
	if err != nil || token == "" {
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if data != nil {
		msg.Data = data
	}

	if _, err := p.client.Send(ctx, msg); err != nil {
		logger.Log.Warn("FCM: failed to send", "error", err)
	}
}
