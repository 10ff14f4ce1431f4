// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to SeedScope:
// database connection, session secrets, external service credentials,
// and feature flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string
	SessionName   string
	SessionDomain string

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string

	// Base URL for OAuth callbacks
	BaseURL string

	// Investor list pagination. Off preserves the legacy page shape
	// where each investor collection is paged independently and a page
	// can carry up to twice the limit; on switches to a single merged
	// ordering.
	InvestorGlobalPaging bool

	// S3 image storage
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// News API
	NewsBaseURL string
	NewsAPIKey  string
	NewsTimeout time.Duration

	// Identity-provider webhook signing secret
	WebhookSecret string
}
