package fcm

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const alertChannelID = "explosion_alerts"

// Client wraps Firebase Cloud Messaging. Without credentials it stays in a
// disabled state instead of failing startup, since alerts are optional.
type Client struct {
	client *messaging.Client
	logger *zap.Logger
}

// NewClient initializes FCM from FIREBASE_CREDENTIALS_PATH or
// FIREBASE_CREDENTIALS_JSON. Missing credentials yield a disabled client.
func NewClient(logger *zap.Logger) (*Client, error) {
	ctx := context.Background()

	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		if credJSON == "" {
			logger.Warn("no Firebase credentials found, push alerts disabled")
			return &Client{logger: logger}, nil
		}

		tmpFile, err := os.CreateTemp("", "firebase-credentials-*.json")
		if err != nil {
			return nil, errors.Wrap(err, "create credentials temp file")
		}
		defer tmpFile.Close()

		if _, err := tmpFile.Write([]byte(credJSON)); err != nil {
			return nil, errors.Wrap(err, "write credentials")
		}
		credPath = tmpFile.Name()
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credPath))
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	logger.Info("Firebase Cloud Messaging initialized")
	return &Client{client: client, logger: logger}, nil
}

// IsEnabled reports whether the client can actually send.
func (c *Client) IsEnabled() bool {
	return c.client != nil
}

// SendMulticast pushes one notification to multiple device tokens.
func (c *Client) SendMulticast(tokens []string, title, body string, data map[string]string) error {
	if c.client == nil {
		return errors.New("FCM client not initialized")
	}
	if len(tokens) == 0 {
		return nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: alertChannelID,
				Priority:  messaging.PriorityHigh,
			},
		},
	}

	resp, err := c.client.SendEachForMulticast(context.Background(), message)
	if err != nil {
		return errors.Wrap(err, "send multicast")
	}

	if resp.FailureCount > 0 {
		c.logger.Warn("some alert deliveries failed",
			zap.Int("success", resp.SuccessCount),
			zap.Int("failure", resp.FailureCount))
	}
	return nil
}
