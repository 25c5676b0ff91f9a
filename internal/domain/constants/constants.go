// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop marks a local development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

const (
	// RetryProviderLocal publishes retry jobs to a local HTTP endpoint.
	RetryProviderLocal = "local"
	// RetryProviderGoogle publishes retry jobs to Google Pub/Sub.
	RetryProviderGoogle = "google"
)
