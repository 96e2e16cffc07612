package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
	Auth     AuthConfig
	Logger   LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// UpstreamConfig holds the base addresses of the three microservices
// the portal fronts, plus the shared outbound call timeout.
type UpstreamConfig struct {
	ClientsBaseURL     string
	MembershipsBaseURL string
	UsersBaseURL       string
	CallTimeoutSeconds int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig controls the browser session cookie and its storage.
type SessionConfig struct {
	CookieName         string
	IdleTimeoutMinutes int
}

// AuthConfig defines the persisted identity cookie parameters.
type AuthConfig struct {
	CookieName       string
	CookieSecret     string
	CookieTTLMinutes int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "gym-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Upstream: UpstreamConfig{
			ClientsBaseURL:     getEnv("CLIENTS_API_BASE_URL", "http://localhost:5058"),
			MembershipsBaseURL: getEnv("MEMBERSHIPS_API_BASE_URL", "http://localhost:5250"),
			UsersBaseURL:       getEnv("USERS_API_BASE_URL", "http://localhost:5076"),
			CallTimeoutSeconds: getEnvAsInt("UPSTREAM_CALL_TIMEOUT_SECONDS", 15),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Session: SessionConfig{
			CookieName:         getEnv("SESSION_COOKIE_NAME", "gym_session"),
			IdleTimeoutMinutes: getEnvAsInt("SESSION_IDLE_TIMEOUT_MINUTES", 30),
		},
		Auth: AuthConfig{
			CookieName:       getEnv("AUTH_COOKIE_NAME", "gym_identity"),
			CookieSecret:     getEnv("AUTH_COOKIE_SECRET", "dev-secret"),
			CookieTTLMinutes: getEnvAsInt("AUTH_COOKIE_TTL_MINUTES", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CallTimeout returns the outbound HTTP call timeout.
func (u UpstreamConfig) CallTimeout() time.Duration {
	if u.CallTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(u.CallTimeoutSeconds) * time.Second
}

// IdleTimeout returns the session idle timeout duration.
func (s SessionConfig) IdleTimeout() time.Duration {
	if s.IdleTimeoutMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// CookieTTL returns the identity cookie lifetime.
func (a AuthConfig) CookieTTL() time.Duration {
	if a.CookieTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(a.CookieTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
