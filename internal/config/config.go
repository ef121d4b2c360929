package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultChatEndpoint    = "http://127.0.0.1:8000/chat"
	DefaultPort            = "8080"
	DefaultAllowedOrigin   = "*"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultSessionIdleTTL  = time.Hour
	DefaultCleanupInterval = 30 * time.Minute
	DefaultTermLogFile     = "gadgetchat-term.log"
)

type Config struct {
	ChatEndpoint string
	// ChatTimeout bounds one chat call; zero means no client-side limit.
	ChatTimeout time.Duration

	Port          string
	AllowedOrigin string

	SessionIdleTTL  time.Duration
	CleanupInterval time.Duration

	LogLevel    string
	LogFormat   string
	TermLogFile string
}

// fileConfig mirrors the optional YAML file named by GADGETCHAT_CONFIG.
type fileConfig struct {
	ChatEndpoint    string `yaml:"chat_endpoint"`
	ChatTimeout     string `yaml:"chat_timeout"`
	Port            string `yaml:"port"`
	AllowedOrigin   string `yaml:"allowed_origin"`
	SessionIdleTTL  string `yaml:"session_idle_ttl"`
	CleanupInterval string `yaml:"cleanup_interval"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	TermLogFile     string `yaml:"term_log_file"`
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment, in increasing precedence.
func Load() (*Config, error) {
	// .env is optional; env vars may already be set
	_ = godotenv.Load()

	fc, err := readFile(os.Getenv("GADGETCHAT_CONFIG"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ChatEndpoint:  pick("CHAT_ENDPOINT", fc.ChatEndpoint, DefaultChatEndpoint),
		Port:          pick("PORT", fc.Port, DefaultPort),
		AllowedOrigin: pick("ALLOWED_ORIGIN", fc.AllowedOrigin, DefaultAllowedOrigin),
		LogLevel:      strings.ToLower(pick("LOG_LEVEL", fc.LogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(pick("LOG_FORMAT", fc.LogFormat, DefaultLogFormat)),
		TermLogFile:   pick("GADGETCHAT_LOG_FILE", fc.TermLogFile, DefaultTermLogFile),
	}

	for _, d := range []struct {
		env, file string
		def       time.Duration
		dst       *time.Duration
	}{
		{"CHAT_TIMEOUT", fc.ChatTimeout, 0, &cfg.ChatTimeout},
		{"SESSION_IDLE_TTL", fc.SessionIdleTTL, DefaultSessionIdleTTL, &cfg.SessionIdleTTL},
		{"CLEANUP_INTERVAL", fc.CleanupInterval, DefaultCleanupInterval, &cfg.CleanupInterval},
	} {
		v, err := parseDuration(d.env, pick(d.env, d.file, ""), d.def)
		if err != nil {
			return nil, err
		}
		*d.dst = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ChatEndpoint == "" {
		return fmt.Errorf("chat endpoint is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: must be text or json", c.LogFormat)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", c.CleanupInterval)
	}
	if c.SessionIdleTTL <= 0 {
		return fmt.Errorf("session idle ttl must be positive, got %s", c.SessionIdleTTL)
	}
	return nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fc, fmt.Errorf("config file %s does not exist", path)
		}
		return fc, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return fc, nil
}

// pick returns the env var if set, else the file value, else def.
func pick(env, file, def string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	if v := strings.TrimSpace(file); v != "" {
		return v
	}
	return def
}

func parseDuration(name, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", name, v)
	}
	return d, nil
}
