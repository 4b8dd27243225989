package tests

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

// RandomExternalID returns an identity provider user id in Clerk's "user_" format.
func RandomExternalID(t *testing.T) string {
	t.Helper()
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
