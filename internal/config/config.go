package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration shared by all service binaries.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Gateway  GatewayConfig
	Notify   NotifyConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	RoutePrefix           string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines the shared trust parameters. JWTSecret and
// InternalAPIKey must match across the gateway and every service that is
// expected to accept each other's credentials.
type AuthConfig struct {
	JWTSecret       string
	TokenTTLSeconds int
	InternalAPIKey  string
	BcryptCost      int
	CookieSecure    bool
	CookieSameSite  string
	VerifyWorkers   int
}

// GatewayConfig maps route prefixes to upstream base URLs.
type GatewayConfig struct {
	PersonsURL       string
	FlightsURL       string
	AircraftURL      string
	ReservationsURL  string
	PaymentsURL      string
	NotificationsURL string
}

// NotifyConfig points service-to-service notification traffic at the gateway.
type NotifyConfig struct {
	GatewayURL     string
	TimeoutSeconds int
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
			Name:                  getEnv("APP_NAME", "airline-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			RoutePrefix:           os.Getenv("APP_ROUTE_PREFIX"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("AUTH_JWT_SECRET", "dev-secret"),
			TokenTTLSeconds: getEnvAsInt("AUTH_TOKEN_TTL_SECONDS", 86400),
			InternalAPIKey:  os.Getenv("AUTH_INTERNAL_API_KEY"),
			BcryptCost:      getEnvAsInt("AUTH_BCRYPT_COST", 12),
			CookieSecure:    getEnvAsBool("AUTH_COOKIE_SECURE", false),
			CookieSameSite:  getEnv("AUTH_COOKIE_SAMESITE", "Lax"),
			VerifyWorkers:   getEnvAsInt("AUTH_VERIFY_WORKERS", 16),
		},
		Gateway: GatewayConfig{
			PersonsURL:       getEnv("GATEWAY_PERSONS_URL", "http://persons:8081"),
			FlightsURL:       getEnv("GATEWAY_FLIGHTS_URL", "http://flights:8082"),
			AircraftURL:      getEnv("GATEWAY_AIRCRAFT_URL", "http://aircraft:8083"),
			ReservationsURL:  getEnv("GATEWAY_RESERVATIONS_URL", "http://reservations:8084"),
			PaymentsURL:      getEnv("GATEWAY_PAYMENTS_URL", "http://payments:8085"),
			NotificationsURL: getEnv("GATEWAY_NOTIFICATIONS_URL", "http://notifications:8086"),
		},
		Notify: NotifyConfig{
			GatewayURL:     getEnv("NOTIFY_GATEWAY_URL", "http://api-gateway:8080"),
			TimeoutSeconds: getEnvAsInt("NOTIFY_TIMEOUT_SECONDS", 5),
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

// Timeout returns the notification client timeout.
func (n NotifyConfig) Timeout() time.Duration {
	if n.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(n.TimeoutSeconds) * time.Second
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

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
