package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMySQL  = "mysql"
	DriverRest   = "rest"
	DriverMemory = "memory"
)

const (
	defaultAccessSecret  = "your-access-secret-key"
	defaultRefreshSecret = "your-refresh-secret-key"
)

type Config struct {
	Database DatabaseConfig
	Store    StoreConfig
	JWT      JWTConfig
	Server   ServerConfig
	CORS     CORSConfig
	Hotel    HotelConfig
	Auth     AuthConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// StoreConfig selects the record store backing the gateway
type StoreConfig struct {
	Driver      string
	RestURL     string
	RestAPIKey  string
	RestTimeout time.Duration
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port                 string
	GinMode              string
	TokenJanitorInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type HotelConfig struct {
	Timezone           string
	RecentLimit        int
	RegistrationAtomic bool
}

// AuthConfig lists the staff emails that receive the admin role on sign-up
type AuthConfig struct {
	AdminEmails []string
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "innovahotel"),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(getEnv("STORE_DRIVER", DriverMySQL)),
			RestURL:     getEnv("REST_URL", ""),
			RestAPIKey:  getEnv("REST_API_KEY", ""),
			RestTimeout: parseDuration(getEnv("REST_TIMEOUT", "10s"), 10*time.Second),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("JWT_ACCESS_SECRET", defaultAccessSecret),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", defaultRefreshSecret),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m"), 15*time.Minute),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:                 getEnv("PORT", "8080"),
			GinMode:              getEnv("GIN_MODE", "debug"),
			TokenJanitorInterval: parseDuration(getEnv("TOKEN_JANITOR_INTERVAL", "1h"), time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Hotel: HotelConfig{
			Timezone:           getEnv("HOTEL_TIMEZONE", "Local"),
			RecentLimit:        parseInt(getEnv("DASHBOARD_RECENT_LIMIT", "8"), 8),
			RegistrationAtomic: parseBool(getEnv("REGISTRATION_ATOMIC", "true"), true),
		},
		Auth: AuthConfig{
			AdminEmails: parseList(strings.ToLower(getEnv("ADMIN_EMAILS", ""))),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// Validate reports the first setting the server cannot start with
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMySQL, DriverMemory:
	case DriverRest:
		if c.Store.RestURL == "" || c.Store.RestAPIKey == "" {
			return errors.New("REST_URL and REST_API_KEY are required for the rest store driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Server.GinMode == "release" &&
		(c.JWT.AccessSecret == defaultAccessSecret || c.JWT.RefreshSecret == defaultRefreshSecret) {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set in release mode")
	}
	if _, err := c.Hotel.Location(); err != nil {
		return fmt.Errorf("invalid HOTEL_TIMEZONE: %w", err)
	}
	if c.Hotel.RecentLimit <= 0 {
		return errors.New("DASHBOARD_RECENT_LIMIT must be positive")
	}
	if c.Server.TokenJanitorInterval <= 0 {
		return errors.New("TOKEN_JANITOR_INTERVAL must be positive")
	}
	return nil
}

// Location loads the hotel's configured time zone
func (h HotelConfig) Location() (*time.Location, error) {
	return time.LoadLocation(h.Timezone)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Printf("Warning: Invalid integer '%s', using default\n", s)
		return fallback
	}
	return n
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		fmt.Printf("Warning: Invalid boolean '%s', using default\n", s)
		return fallback
	}
	return b
}

func parseList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
