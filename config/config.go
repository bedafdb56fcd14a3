package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTimeZone           = "America/Toronto"
	defaultSMSConcurrency     = 6
	defaultOutboxInterval     = 2 * time.Second
	defaultOutboxBatchSize    = 50
	defaultOutboxMaxAttempts  = 10
	defaultAccessTokenTTL     = 12 * time.Hour
	defaultCartTTL            = 72 * time.Hour
	defaultProviderTimeout    = 15 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration struct {
		// AutoMigrate runs gorm AutoMigrate over the persistence models at startup
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase credentials shared by ID token verification, push and the mail queue
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`

	// Redis backs the staff cart store; empty addr falls back to memory
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Twilio *TwilioConfig `json:"twilio" yaml:"twilio"`

	Email *EmailConfig `json:"email" yaml:"email"`

	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// QRCode configuration for order tickets
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// IdentityProvider is "firebase" or "local"
	IdentityProvider string        `json:"identityProvider" yaml:"identityProvider"`
	AccessTokenTTL   time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	BcryptCost       int           `json:"bcryptCost" yaml:"bcryptCost"`

	// Web API key used for the Identity Toolkit password sign-in
	FirebaseAPIKey     string `json:"firebaseApiKey" yaml:"firebaseApiKey"`
	IdentityToolkitURL string `json:"identityToolkitUrl" yaml:"identityToolkitUrl"`

	// RoleAssignments are inserted at startup when missing
	RoleAssignments []RoleAssignmentSeed `json:"roleAssignments" yaml:"roleAssignments"`
}

// RoleAssignmentSeed is a single identity-to-role mapping loaded from configuration
type RoleAssignmentSeed struct {
	Email             string   `json:"email" yaml:"email"`
	FullName          string   `json:"fullName" yaml:"fullName"`
	Role              string   `json:"role" yaml:"role"`
	AssignedLocations []string `json:"assignedLocations" yaml:"assignedLocations"`
	// Password is only used by the local identity provider
	Password string `json:"password" yaml:"password"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// KafkaConfig configures the kafka publisher and the notifier consumer
type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	GroupID string   `json:"groupId" yaml:"groupId"`
	// ConsumerEnabled starts the kafka consumer inside the notifier
	ConsumerEnabled bool `json:"consumerEnabled" yaml:"consumerEnabled"`
}

type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	PoolSize int           `json:"poolSize" yaml:"poolSize"`
	CartTTL  time.Duration `json:"cartTTL" yaml:"cartTTL"`
}

// TwilioConfig defines the SMS provider credentials
type TwilioConfig struct {
	AccountSID string        `json:"accountSid" yaml:"accountSid"`
	AuthToken  string        `json:"authToken" yaml:"authToken"`
	FromNumber string        `json:"fromNumber" yaml:"fromNumber"`
	BaseURL    string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// EmailConfig selects how order emails leave the system
type EmailConfig struct {
	// Provider is "firestore", "resend" or "log"
	Provider       string        `json:"provider" yaml:"provider"`
	From           string        `json:"from" yaml:"from"`
	MailCollection string        `json:"mailCollection" yaml:"mailCollection"`
	ResendAPIKey   string        `json:"resendApiKey" yaml:"resendApiKey"`
	ResendBaseURL  string        `json:"resendBaseUrl" yaml:"resendBaseUrl"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

type NotifierConfig struct {
	// Port of the notifier's push endpoint; 0 reuses http.port
	Port int `json:"port" yaml:"port"`
	// TimeZone used when rendering delivery dates and placed-at timestamps
	TimeZone       string `json:"timeZone" yaml:"timeZone"`
	SMSConcurrency int    `json:"smsConcurrency" yaml:"smsConcurrency"`
	Signature      string `json:"signature" yaml:"signature"`
}

type OutboxConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Interval    time.Duration `json:"interval" yaml:"interval"`
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// CatalogConfig holds the starter menu written when the catalog is empty
type CatalogConfig struct {
	SeedItems []string `json:"seedItems" yaml:"seedItems"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// TWILIO_ACCOUNTSID -> twilio.accountSid
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.TimeZone == "" {
		cfg.Notifier.TimeZone = defaultTimeZone
	}
	if cfg.Notifier.SMSConcurrency <= 0 {
		cfg.Notifier.SMSConcurrency = defaultSMSConcurrency
	}

	if cfg.Outbox == nil {
		cfg.Outbox = &OutboxConfig{Enabled: true}
	}
	if cfg.Outbox.Interval <= 0 {
		cfg.Outbox.Interval = defaultOutboxInterval
	}
	if cfg.Outbox.BatchSize <= 0 {
		cfg.Outbox.BatchSize = defaultOutboxBatchSize
	}
	if cfg.Outbox.MaxAttempts <= 0 {
		cfg.Outbox.MaxAttempts = defaultOutboxMaxAttempts
	}

	if cfg.Redis != nil && cfg.Redis.CartTTL <= 0 {
		cfg.Redis.CartTTL = defaultCartTTL
	}
	if cfg.Twilio != nil && cfg.Twilio.Timeout <= 0 {
		cfg.Twilio.Timeout = defaultProviderTimeout
	}
	if cfg.Email != nil && cfg.Email.Timeout <= 0 {
		cfg.Email.Timeout = defaultProviderTimeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

// Location resolves the configured time zone used for rendering order times.
func (c *NotifierConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid notifier time zone %q", c.TimeZone)
	}

	return loc, nil
}
