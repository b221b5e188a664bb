package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates runtime configuration for the MyCloud API.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Upload  UploadConfig
	Metrics MetricsConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SessionConfig groups session-token settings.
type SessionConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

// UploadConfig controls the simulated transfer progression.
type UploadConfig struct {
	TickInterval time.Duration
	TickStep     int
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("MYCLOUD_API_HOST", "0.0.0.0"),
			Port:         getInt("MYCLOUD_API_PORT", 8080),
			ReadTimeout:  getDuration("MYCLOUD_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("MYCLOUD_API_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:  getDuration("MYCLOUD_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Session: SessionConfig{
			TokenSecret: getString("MYCLOUD_SESSION_SECRET", "change-me-to-a-32-byte-secret"),
			TokenTTL:    getDuration("MYCLOUD_SESSION_TTL", 24*time.Hour),
		},
		Upload: loadUploadConfig(),
		Metrics: MetricsConfig{
			PrometheusPath: getString("MYCLOUD_METRICS_PATH", "/metrics"),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func loadUploadConfig() UploadConfig {
	step := getInt("MYCLOUD_UPLOAD_TICK_STEP", 10)
	if step < 1 || step > 100 {
		step = 10
	}

	return UploadConfig{
		TickInterval: getDuration("MYCLOUD_UPLOAD_TICK_INTERVAL", 200*time.Millisecond),
		TickStep:     step,
	}
}
