package notification

import (
	"context"
	"fmt"

	"ttravels/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendTripPushNotification(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

// SendTripPushNotification sends a push to the given device token.
func (s *DefaultNotificationService) SendTripPushNotification(
	ctx context.Context,
	deviceToken, title, body string,
	data map[string]string,
) error {
	if deviceToken == "" {
		return fmt.Errorf("SendTripPushNotification: device token is empty")
	}
	if utils.FCMClient == nil {
		return fmt.Errorf("SendTripPushNotification: messaging client not initialized")
	}
	if data == nil {
		data = map[string]string{}
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendTripPushNotification: failed to send FCM message: %w", err)
	}

	fmt.Printf("SendTripPushNotification: successfully sent message: %s\n", response)
	return nil
}
