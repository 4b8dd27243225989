package clerk

import (
	"strings"

	"github.com/aarondl/null/v8"
)

// Clerk webhook event types handled by the service.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// UserEvent is a verified Clerk webhook event.
type UserEvent struct {
	Type   string   `json:"type"`
	Object string   `json:"object"`
	Data   UserData `json:"data"`
}

// UserData is the user object carried by user.* events.
// user.deleted events only carry the id.
type UserData struct {
	ID             string         `json:"id"`
	FirstName      null.String    `json:"first_name"`
	LastName       null.String    `json:"last_name"`
	ImageURL       null.String    `json:"image_url"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	Deleted        bool           `json:"deleted,omitempty"`
}

// EmailAddress is one entry of a Clerk user's email addresses.
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// Emails returns the non-empty addresses in the order Clerk sent them.
func (d UserData) Emails() []string {
	emails := make([]string, 0, len(d.EmailAddresses))
	for _, e := range d.EmailAddresses {
		if addr := strings.TrimSpace(e.EmailAddress); addr != "" {
			emails = append(emails, addr)
		}
	}
	return emails
}

type updateMetadataRequest struct {
	PublicMetadata map[string]any `json:"public_metadata"`
}

// APIError is an error response from the Clerk Backend API.
type APIError struct {
	Errors []struct {
		Message     string `json:"message"`
		LongMessage string `json:"long_message"`
		Code        string `json:"code"`
	} `json:"errors"`
}
