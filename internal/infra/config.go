package infra

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv         string   `envconfig:"APP_ENV" default:"development"`
	Port           string   `envconfig:"PORT" default:"5000"`
	MongoURI       string   `envconfig:"MONGODB_URI"`
	DBUser         string   `envconfig:"DB_USER"`
	DBPassword     string   `envconfig:"DB_PASSWORD"`
	DBHost         string   `envconfig:"DB_HOST" default:"cluster0.2a8vu.mongodb.net"`
	DBName         string   `envconfig:"DB_NAME" default:"crowdCubeDB"`
	MemoryStore    bool     `envconfig:"MEMORY_STORE" default:"false"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:5174,https://shafriki-crowdcube.surge.sh"`

	HTTPReadTimeoutSeconds  int `envconfig:"HTTP_READ_TIMEOUT_SECONDS" default:"15"`
	HTTPWriteTimeoutSeconds int `envconfig:"HTTP_WRITE_TIMEOUT_SECONDS" default:"30"`
	HTTPIdleTimeoutSeconds  int `envconfig:"HTTP_IDLE_TIMEOUT_SECONDS" default:"60"`
	MongoTimeoutSeconds     int `envconfig:"MONGO_CONNECT_TIMEOUT_SECONDS" default:"10"`

	HTTPReadTimeout  time.Duration `ignored:"true"`
	HTTPWriteTimeout time.Duration `ignored:"true"`
	HTTPIdleTimeout  time.Duration `ignored:"true"`
	MongoTimeout     time.Duration `ignored:"true"`
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.HTTPReadTimeout = time.Second * time.Duration(cfg.HTTPReadTimeoutSeconds)
	cfg.HTTPWriteTimeout = time.Second * time.Duration(cfg.HTTPWriteTimeoutSeconds)
	cfg.HTTPIdleTimeout = time.Second * time.Duration(cfg.HTTPIdleTimeoutSeconds)
	cfg.MongoTimeout = time.Second * time.Duration(cfg.MongoTimeoutSeconds)
	cfg.AllowedOrigins = cleanList(cfg.AllowedOrigins)

	if cfg.MemoryStore {
		return cfg, nil
	}
	if cfg.MongoURI == "" && (cfg.DBUser == "" || cfg.DBPassword == "") {
		return nil, fmt.Errorf("MONGODB_URI or DB_USER and DB_PASSWORD are required")
	}

	return cfg, nil
}

// MongoURL returns MONGODB_URI when set, otherwise an Atlas SRV URI built
// from the DB_* credentials.
func (c *Config) MongoURL() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
