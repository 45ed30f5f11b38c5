package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes
const (
	AttrEventType = "event_type"
	AttrProjectID = "project_id"
	AttrRequestID = "request_id"
)

// EventTypeGenerationRequested marks messages asking the worker to run a generation.
const EventTypeGenerationRequested = "generation.requested"
