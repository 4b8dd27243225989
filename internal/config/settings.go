package config

import (
	"github.com/DIMO-Network/shared/pkg/db"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// ClerkWebhookSecret is the Svix signing secret of the Clerk webhook endpoint (whsec_...).
	ClerkWebhookSecret string `env:"CLERK_WEBHOOK_SECRET"`
	ClerkSecretKey     string `env:"CLERK_SECRET_KEY"`
	ClerkAPIURL        string `env:"CLERK_API_URL"`
	// MetadataIDKey is the public metadata key the local user id is written under.
	MetadataIDKey string `env:"METADATA_ID_KEY"`

	DB db.Settings `envPrefix:"DB_"`
}

const (
	defaultLogLevel      = "info"
	defaultServiceName   = "user-sync-api"
	defaultClerkAPIURL   = "https://api.clerk.com/v1"
	defaultMetadataIDKey = "userMongoId"
)

// ApplyDefaults fills in optional settings that were left empty.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.ClerkAPIURL == "" {
		s.ClerkAPIURL = defaultClerkAPIURL
	}
	if s.MetadataIDKey == "" {
		s.MetadataIDKey = defaultMetadataIDKey
	}
}
