package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Email transports
const (
	EmailProviderFirestore = "firestore"
	EmailProviderResend    = "resend"
	EmailProviderLog       = "log"
)

// Identity providers used by login
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// Event types written to the outbox
const (
	EventTypeOrderCreated = "order.created"
)

// SettingsSingletonID is the fixed key of the only notification settings row.
const SettingsSingletonID = "default"

// MaxNotificationRecipients is the number of phone and email slots admins can fill.
const MaxNotificationRecipients = 6
