package userwebhook

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/karimi-wahid/landmark-user-sync/internal/clients/clerk"
	"github.com/karimi-wahid/landmark-user-sync/internal/services/usersrepo"
	"github.com/rs/zerolog"
)

// Response bodies, sent as plain text.
const (
	msgProcessed       = "Webhook processed"
	msgInvalidWebhook  = "Invalid webhook"
	msgInvalidUserData = "Invalid user data"
	msgProcessingError = "Error processing user"
	msgDeleteError     = "Error deleting user"
)

// Verifier authenticates a webhook delivery and decodes its event.
type Verifier interface {
	Verify(payload []byte, headers http.Header) (*clerk.UserEvent, error)
}

// UserRepository persists the local copy of identity provider users.
type UserRepository interface {
	CreateOrUpdateUser(ctx context.Context, req usersrepo.UpsertUserRequest) (*usersrepo.User, error)
	DeleteUser(ctx context.Context, externalID string) error
}

// MetadataWriter writes public metadata back to the identity provider.
type MetadataWriter interface {
	UpdateUserMetadata(ctx context.Context, userID string, publicMetadata map[string]any) error
}

// Controller keeps local users in sync with identity provider lifecycle events.
type Controller struct {
	verifier      Verifier
	repo          UserRepository
	metadata      MetadataWriter
	metadataIDKey string
}

// NewController creates a new Controller. metadataIDKey is the public metadata
// key the local user id is stored under after a user is created.
func NewController(verifier Verifier, repo UserRepository, metadata MetadataWriter, metadataIDKey string) *Controller {
	return &Controller{
		verifier:      verifier,
		repo:          repo,
		metadata:      metadata,
		metadataIDKey: metadataIDKey,
	}
}

// HandleUserEvent godoc
// @Summary      Receive identity provider user events
// @Description  Verifies the svix signature of a Clerk webhook and creates, updates or deletes the local user. Unknown event types are acknowledged without action.
// @Tags         Webhooks
// @Accept       json
// @Produce      plain
// @Param        svix-id         header  string  true  "Message id"
// @Param        svix-timestamp  header  string  true  "Unix timestamp of the delivery"
// @Param        svix-signature  header  string  true  "Svix signature"
// @Success      200  {string}  string  "Webhook processed"
// @Failure      400  {string}  string  "Invalid webhook or user data"
// @Failure      500  {string}  string  "Error processing or deleting user"
// @Router       /api/webhooks [post]
func (ctl *Controller) HandleUserEvent(c *fiber.Ctx) error {
	evt, err := ctl.verifier.Verify(c.Body(), requestHeaders(c))
	if err != nil {
		return richerrors.Error{
			ExternalMsg: msgInvalidWebhook,
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	externalID := strings.TrimSpace(evt.Data.ID)
	if externalID == "" {
		return richerrors.Error{
			ExternalMsg: msgInvalidUserData,
			Err:         errors.New("event has no user id"),
			Code:        fiber.StatusBadRequest,
		}
	}

	logger := zerolog.Ctx(c.UserContext()).With().
		Str("eventType", evt.Type).
		Str("userId", externalID).
		Logger()

	switch evt.Type {
	case clerk.EventUserCreated, clerk.EventUserUpdated:
		if err := ctl.syncUser(c.Context(), evt.Type, externalID, evt.Data); err != nil {
			return richerrors.Error{
				ExternalMsg: msgProcessingError,
				Err:         err,
				Code:        fiber.StatusInternalServerError,
			}
		}
		logger.Info().Msg("Synchronized user")
	case clerk.EventUserDeleted:
		if err := ctl.repo.DeleteUser(c.Context(), externalID); err != nil {
			return richerrors.Error{
				ExternalMsg: msgDeleteError,
				Err:         err,
				Code:        fiber.StatusInternalServerError,
			}
		}
		logger.Info().Msg("Deleted user")
	default:
		logger.Warn().Msg("Unhandled event type")
	}

	return c.Status(fiber.StatusOK).SendString(msgProcessed)
}

// syncUser upserts the user and, for newly created users, stores the local id in the
// identity provider's public metadata.
func (ctl *Controller) syncUser(ctx context.Context, eventType, externalID string, data clerk.UserData) error {
	user, err := ctl.repo.CreateOrUpdateUser(ctx, usersrepo.UpsertUserRequest{
		ExternalID: externalID,
		FirstName:  strings.TrimSpace(data.FirstName.String),
		LastName:   strings.TrimSpace(data.LastName.String),
		ImageURL:   strings.TrimSpace(data.ImageURL.String),
		Emails:     data.Emails(),
	})
	if err != nil {
		return err
	}

	if eventType != clerk.EventUserCreated || user == nil {
		return nil
	}
	return ctl.metadata.UpdateUserMetadata(ctx, externalID, map[string]any{
		ctl.metadataIDKey: user.ID,
	})
}

// requestHeaders copies the fasthttp request headers into an http.Header.
func requestHeaders(c *fiber.Ctx) http.Header {
	headers := make(http.Header)
	c.Request().Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})
	return headers
}
