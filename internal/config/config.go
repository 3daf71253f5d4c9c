package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-based settings
type Config struct {
	Environment   string
	LogLevel      string
	ServerAddress string

	DatabaseURL    string
	MigrationsPath string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL   string
	MQTTClientID    string
	MQTTTopicPrefix string

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string

	UploadDir     string
	PublicBaseURL string
}

// Development reports whether APP_ENV is "development".
func (c *Config) Development() bool {
	return c.Environment == "development"
}

// Load reads an optional .env file, then configuration from environment variables.
// Variables already present in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Environment:     getenv("APP_ENV", "production"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		ServerAddress:   getenv("SERVER_ADDRESS", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  getenv("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddress:    os.Getenv("REDIS_ADDRESS"),
		RedisUsername:   os.Getenv("REDIS_USERNAME"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		MQTTBrokerURL:   os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:    getenv("MQTT_CLIENT_ID", "playhouse-api"),
		MQTTTopicPrefix: getenv("MQTT_TOPIC_PREFIX", "site"),
		UseSpaces:       getenvBool("USE_SPACES", false),
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
		UploadDir:       getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:   os.Getenv("PUBLIC_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", "60m"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be a positive duration, got %q", os.Getenv("JWT_TTL"))
	}
	cfg.JWTTTL = ttl

	if cfg.UseSpaces {
		if cfg.SpacesBucket == "" || cfg.SpacesEndpoint == "" || cfg.SpacesCDNURL == "" {
			return nil, fmt.Errorf("USE_SPACES requires SPACES_ENDPOINT, SPACES_BUCKET and SPACES_CDN_URL")
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
