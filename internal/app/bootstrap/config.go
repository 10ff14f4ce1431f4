// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SeedScope. They are
// loaded via WAFFLE's config system with support for config files,
// SEEDSCOPE_* environment variables, and command-line flags.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "seedscope", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "seedscope-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for OAuth callbacks"},

	{Name: "investor_global_paging", Default: false, Desc: "Page the investor union as one merged ordering instead of per-collection concatenation"},

	// S3 image storage
	{Name: "s3_region", Default: "", Desc: "AWS region for image uploads"},
	{Name: "s3_bucket", Default: "", Desc: "S3 bucket for image uploads"},
	{Name: "s3_access_key_id", Default: "", Desc: "AWS access key id (blank uses the default credential chain)"},
	{Name: "s3_secret_access_key", Default: "", Desc: "AWS secret access key"},

	// News API
	{Name: "news_base_url", Default: "https://newsapi.org", Desc: "News API base URL"},
	{Name: "news_api_key", Default: "", Desc: "News API key (blank disables the news feed)"},
	{Name: "news_timeout", Default: "10s", Desc: "News API request timeout"},

	// Webhooks
	{Name: "webhook_secret", Default: "", Desc: "HMAC secret for identity-provider webhooks (blank disables the endpoint)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SEEDSCOPE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		BaseURL: appValues.String("base_url"),

		InvestorGlobalPaging: appValues.Bool("investor_global_paging"),

		S3Region:          appValues.String("s3_region"),
		S3Bucket:          appValues.String("s3_bucket"),
		S3AccessKeyID:     appValues.String("s3_access_key_id"),
		S3SecretAccessKey: appValues.String("s3_secret_access_key"),

		NewsBaseURL: appValues.String("news_base_url"),
		NewsAPIKey:  appValues.String("news_api_key"),
		NewsTimeout: appValues.Duration("news_timeout", 10*time.Second),

		WebhookSecret: appValues.String("webhook_secret"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// backend is touched.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.S3Bucket != "" && appCfg.S3Region == "" {
		return fmt.Errorf("s3_bucket is set but s3_region is empty")
	}

	return nil
}
