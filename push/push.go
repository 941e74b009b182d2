package push

import (
	"errors"
	"os"

	pushnotifications "github.com/pusher/push-notifications-go"
)

// Beams push notifications client, nil when credentials are not configured.
var Beams pushnotifications.PushNotifications

// Setup creates the Pusher Beams client used by the token provider endpoint.
func Setup() error {
	instanceId := os.Getenv("PUSHER_INSTANCE_ID")
	secretKey := os.Getenv("PUSHER_SECRET_KEY")

	if instanceId == "" || secretKey == "" {
		return errors.New("no pusher beams credentials")
	}

	client, err := pushnotifications.New(instanceId, secretKey)
	if err != nil {
		return err
	}

	Beams = client

	return nil
}
