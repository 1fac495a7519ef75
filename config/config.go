package config

import (
	"os"
	"path/filepath"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCookieName         = "ecommerce_session"
	defaultSessionMaxAge      = 7 * 24 * time.Hour
	defaultUpstreamTimeout    = 10 * time.Second
	defaultCategoriesTTL      = 24 * time.Hour
	defaultProductTTL         = time.Hour
	defaultListingTTL         = time.Hour
	defaultDebounce           = 500 * time.Millisecond
	defaultGatewayURL         = "http://localhost:3000"

	EnvProduction = "production"

	// PlaceholderSessionSecret is the secret shipped in config.yaml. It must
	// be overridden in production.
	PlaceholderSessionSecret = "change-me-to-a-random-string-of-32-or-more-bytes"
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

	Session SessionConfig `json:"session" yaml:"session"`

	Upstream UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Cache configuration for proxied upstream responses
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Access AccessConfig `json:"access" yaml:"access"`

	// Metrics configuration for the OpenTelemetry exporter
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Client configuration for the shopper CLI
	Client *ClientConfig `json:"client" yaml:"client"`
}

// SessionConfig defines the encrypted session cookie settings
type SessionConfig struct {
	Secret     string        `json:"secret" yaml:"secret"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	MaxAge     time.Duration `json:"maxAge" yaml:"maxAge"`
}

// UpstreamConfig points at the commerce API being proxied
type UpstreamConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CacheConfig defines the response cache provider and per-resource lifetimes
type CacheConfig struct {
	// Provider type: "none", "memory" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`

	CategoriesTTL time.Duration `json:"categoriesTtl" yaml:"categoriesTtl"`
	ProductTTL    time.Duration `json:"productTtl" yaml:"productTtl"`
	ListingTTL    time.Duration `json:"listingTtl" yaml:"listingTtl"`
}

// AccessConfig defines how request paths are classified by the gate
type AccessConfig struct {
	ProtectedPrefixes []string `json:"protectedPrefixes" yaml:"protectedPrefixes"`
	AuthPath          string   `json:"authPath" yaml:"authPath"`
	LandingPath       string   `json:"landingPath" yaml:"landingPath"`
	InfraPrefixes     []string `json:"infraPrefixes" yaml:"infraPrefixes"`
}

// MetricsConfig defines the OTLP metrics exporter
type MetricsConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Insecure bool          `json:"insecure" yaml:"insecure"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// ClientConfig defines the shopper CLI settings
type ClientConfig struct {
	GatewayURL string        `json:"gatewayUrl" yaml:"gatewayUrl"`
	StorageURL string        `json:"storageUrl" yaml:"storageUrl"`
	Debounce   time.Duration `json:"debounce" yaml:"debounce"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IsProduction reports whether cookies must be marked secure.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: SESSION_COOKIENAME -> session.cookieName (not session.cookiename)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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
	loadDotEnv()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// loadDotEnv loads a .env file into the process environment when one exists.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}

	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = defaultUpstreamTimeout
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.CategoriesTTL <= 0 {
		cfg.Cache.CategoriesTTL = defaultCategoriesTTL
	}
	if cfg.Cache.ProductTTL <= 0 {
		cfg.Cache.ProductTTL = defaultProductTTL
	}
	if cfg.Cache.ListingTTL <= 0 {
		cfg.Cache.ListingTTL = defaultListingTTL
	}

	if len(cfg.Access.ProtectedPrefixes) == 0 {
		cfg.Access.ProtectedPrefixes = []string{"/products", "/cart"}
	}
	if cfg.Access.AuthPath == "" {
		cfg.Access.AuthPath = "/login"
	}
	if cfg.Access.LandingPath == "" {
		cfg.Access.LandingPath = "/products"
	}
	if len(cfg.Access.InfraPrefixes) == 0 {
		cfg.Access.InfraPrefixes = []string{"/assets", "/.well-known", "/api", "/health"}
	}

	if cfg.Client == nil {
		cfg.Client = &ClientConfig{}
	}
	if cfg.Client.GatewayURL == "" {
		cfg.Client.GatewayURL = defaultGatewayURL
	}
	if cfg.Client.Debounce <= 0 {
		cfg.Client.Debounce = defaultDebounce
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
