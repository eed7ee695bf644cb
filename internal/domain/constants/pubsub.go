// Package constants holds shared configuration value constants.
package constants

// Pub/Sub provider identifiers accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
