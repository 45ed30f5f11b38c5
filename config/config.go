package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
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

	// Database behaviour shared by every GORM session
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Dropbox configuration for the cloud file gateway
	Dropbox *DropboxConfig `json:"dropbox" yaml:"dropbox"`

	// Gemini configuration for vision analysis and ad copy generation
	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	// Speech configuration for video transcription
	Speech *SpeechConfig `json:"speech" yaml:"speech"`

	// Storage configuration for the temp directory and the audio bucket
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Media configuration for the ffmpeg tooling
	Media *MediaConfig `json:"media" yaml:"media"`

	// Scraper configuration for landing page extraction
	Scraper *ScraperConfig `json:"scraper" yaml:"scraper"`

	// Cache configuration for freshness and garbage collection
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Cleanup configuration for the orphaned file monitor
	Cleanup *CleanupConfig `json:"cleanup" yaml:"cleanup"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the Pub/Sub push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema migration and query logging settings
type DatabaseConfig struct {
	AutoMigrate   bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`
}

// DropboxConfig defines the Dropbox OAuth app and API endpoints
type DropboxConfig struct {
	ClientID       string `json:"clientId" yaml:"clientId"`
	ClientSecret   string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI    string `json:"redirectUri" yaml:"redirectUri"`
	AuthURL        string `json:"authUrl" yaml:"authUrl"`
	TokenURL       string `json:"tokenUrl" yaml:"tokenUrl"`
	APIBaseURL     string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	ContentBaseURL string `json:"contentBaseUrl" yaml:"contentBaseUrl"`
	// Requested scopes, e.g. account_info.read files.content.read
	Scopes []string `json:"scopes" yaml:"scopes"`
}

// GeminiConfig defines the generative model settings
type GeminiConfig struct {
	APIKey          string  `json:"apiKey" yaml:"apiKey"`
	ProjectID       string  `json:"projectId" yaml:"projectId"`
	Location        string  `json:"location" yaml:"location"`
	Endpoint        string  `json:"endpoint" yaml:"endpoint"` // Optional override, used in tests
	VisionModel     string  `json:"visionModel" yaml:"visionModel"`
	TextModel       string  `json:"textModel" yaml:"textModel"`
	Temperature     float64 `json:"temperature" yaml:"temperature"`
	TopK            int64   `json:"topK" yaml:"topK"`
	TopP            float64 `json:"topP" yaml:"topP"`
	MaxOutputTokens int64   `json:"maxOutputTokens" yaml:"maxOutputTokens"`
}

// SpeechConfig defines Google Speech-to-Text settings
type SpeechConfig struct {
	CredentialsFile string        `json:"credentialsFile" yaml:"credentialsFile"`
	Endpoint        string        `json:"endpoint" yaml:"endpoint"`
	LanguageCode    string        `json:"languageCode" yaml:"languageCode"`
	PollInterval    time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// StorageConfig defines the managed temp directory and audio bucket
type StorageConfig struct {
	// gocloud bucket URL: gs://bucket, file:///path or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// URI prefix the speech service reads uploaded objects from, e.g. gs://bucket
	ObjectURIPrefix string `json:"objectUriPrefix" yaml:"objectUriPrefix"`
	AudioPrefix     string `json:"audioPrefix" yaml:"audioPrefix"`
	TempDir         string `json:"tempDir" yaml:"tempDir"`
}

// MediaConfig defines the external audio tooling
type MediaConfig struct {
	FFmpegBinary  string `json:"ffmpegBinary" yaml:"ffmpegBinary"`
	FFprobeBinary string `json:"ffprobeBinary" yaml:"ffprobeBinary"`
}

// ScraperConfig defines landing page extraction settings
type ScraperConfig struct {
	UserAgent        string        `json:"userAgent" yaml:"userAgent"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	PolitenessDelay  time.Duration `json:"politenessDelay" yaml:"politenessDelay"`
	SettleDelay      time.Duration `json:"settleDelay" yaml:"settleDelay"`
	MaxContentLength int           `json:"maxContentLength" yaml:"maxContentLength"`
	ChromePath       string        `json:"chromePath" yaml:"chromePath"`
}

// CacheConfig defines cache freshness and garbage collection
type CacheConfig struct {
	InterpretationTTL   time.Duration `json:"interpretationTtl" yaml:"interpretationTtl"`
	InterpretationGCTTL time.Duration `json:"interpretationGcTtl" yaml:"interpretationGcTtl"`
	LandingPageTTL      time.Duration `json:"landingPageTtl" yaml:"landingPageTtl"`
}

// CleanupConfig defines the orphaned file monitor schedule
type CleanupConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
	MaxAge   time.Duration `json:"maxAge" yaml:"maxAge"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines push authentication for the generation worker
type WorkerConfig struct {
	// Expected audience of Pub/Sub push OIDC tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
	// Service account allowed to push
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowThreshold <= 0 {
		cfg.Database.SlowThreshold = 200 * time.Millisecond
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.InterpretationTTL <= 0 {
		cfg.Cache.InterpretationTTL = 30 * 24 * time.Hour
	}
	if cfg.Cache.InterpretationGCTTL <= 0 {
		cfg.Cache.InterpretationGCTTL = 90 * 24 * time.Hour
	}
	if cfg.Cache.LandingPageTTL <= 0 {
		cfg.Cache.LandingPageTTL = 7 * 24 * time.Hour
	}

	if cfg.Scraper == nil {
		cfg.Scraper = &ScraperConfig{}
	}
	if cfg.Scraper.Timeout <= 0 {
		cfg.Scraper.Timeout = 30 * time.Second
	}
	if cfg.Scraper.MaxContentLength <= 0 {
		cfg.Scraper.MaxContentLength = 10000
	}

	if cfg.Cleanup == nil {
		cfg.Cleanup = &CleanupConfig{}
	}
	if cfg.Cleanup.MaxAge <= 0 {
		cfg.Cleanup.MaxAge = time.Hour
	}
	if cfg.Cleanup.Interval <= 0 {
		cfg.Cleanup.Interval = 30 * time.Minute
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.TempDir == "" {
		cfg.Storage.TempDir = filepath.Join(os.TempDir(), "adcopy")
	}
	if cfg.Storage.AudioPrefix == "" {
		cfg.Storage.AudioPrefix = "audio/"
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.FFmpegBinary == "" {
		cfg.Media.FFmpegBinary = "ffmpeg"
	}
	if cfg.Media.FFprobeBinary == "" {
		cfg.Media.FFprobeBinary = "ffprobe"
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
