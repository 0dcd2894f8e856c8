// Package notify implements the NotificationGateway port over the HTTP APIs
// of the push and SMS providers. A delivery error here is data for the
// dispatcher, never a reason to unwind a committed transition.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"booking/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// HTTPGateway posts notification payloads to the configured provider
// endpoints.
type HTTPGateway struct {
	client  *http.Client
	pushURL string
	smsURL  string
	apiKey  string
}

// NewHTTPGateway creates a gateway for the given provider endpoints.
func NewHTTPGateway(pushURL, smsURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		client:  &http.Client{Timeout: requestTimeout},
		pushURL: pushURL,
		smsURL:  smsURL,
		apiKey:  apiKey,
	}
}

type pushPayload struct {
	Token string `json:"token"`
	JobID string `json:"job_id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type smsPayload struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// SendPush delivers a push notification to the recipient's device token.
func (g *HTTPGateway) SendPush(ctx context.Context, recipient ports.Recipient, message ports.Message) error {
	if recipient.PushToken == "" {
		return fmt.Errorf("recipient %s has no push token", recipient.UserID)
	}

	return g.post(ctx, g.pushURL, pushPayload{
		Token: recipient.PushToken,
		JobID: message.JobID.String(),
		Kind:  message.Kind,
		Title: message.Title,
		Body:  message.Body,
	})
}

// SendSMS delivers a text message to the recipient's phone.
func (g *HTTPGateway) SendSMS(ctx context.Context, recipient ports.Recipient, message ports.Message) error {
	if recipient.Phone == "" {
		return fmt.Errorf("recipient %s has no phone number", recipient.UserID)
	}

	return g.post(ctx, g.smsURL, smsPayload{
		Phone: recipient.Phone,
		Text:  message.Title + ": " + message.Body,
	})
}

func (g *HTTPGateway) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return nil
}
