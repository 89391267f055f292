package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type APIConfig struct {
	// RemoteBase is the public booking API this portal orchestrates.
	// All inventory, pricing, OTP and booking state lives behind it.
	RemoteBase string
}

type SessionConfig struct {
	Secret     string
	CookieName string
	// CookieTTL bounds the signed session cookie itself.
	CookieTTL time.Duration
	// SessionTTL applies to tab-session state: login flag, room
	// selection draft, confirmation snapshot.
	SessionTTL time.Duration
	// DurableTTL applies to the stored customer token and email.
	DurableTTL time.Duration
}

type RedisConfig struct {
	URL string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		API: APIConfig{
			RemoteBase: getEnv("REMOTE_API_BASE", "https://hoteltheretinue.in/api/public"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev-only-secret-change-in-prod"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "retinue_session"),
			CookieTTL:  getDuration("SESSION_COOKIE_TTL", 30*24*time.Hour),
			SessionTTL: getDuration("SESSION_TTL", 30*time.Minute),
			DurableTTL: getDuration("SESSION_DURABLE_TTL", 30*24*time.Hour),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
