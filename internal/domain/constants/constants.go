// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderNoop drops enqueued messages; used when no queue is configured.
	PubSubProviderNoop = "noop"
	// PubSubProviderLocal posts messages to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes messages to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
