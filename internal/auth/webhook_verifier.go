package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/karimi-wahid/landmark-user-sync/internal/clients/clerk"
	svix "github.com/svix/svix-webhooks/go"
)

var (
	// ErrInvalidSignature is returned when the svix headers do not authenticate the payload.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedEvent is returned when an authenticated payload is not a clerk event.
	ErrMalformedEvent = errors.New("malformed webhook event")
)

// WebhookVerifier authenticates Clerk webhook deliveries signed with svix.
type WebhookVerifier struct {
	webhook *svix.Webhook
}

// NewWebhookVerifier creates a verifier for the endpoint signing secret (whsec_...).
func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	if secret == "" {
		return nil, errors.New("webhook signing secret is required")
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create svix webhook: %w", err)
	}
	return &WebhookVerifier{webhook: wh}, nil
}

// Verify checks the svix-id, svix-timestamp and svix-signature headers against payload
// and decodes the event.
func (v *WebhookVerifier) Verify(payload []byte, headers http.Header) (*clerk.UserEvent, error) {
	if err := v.webhook.Verify(payload, headers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	var evt clerk.UserEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	return &evt, nil
}
