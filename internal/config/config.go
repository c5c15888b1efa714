package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

type Config struct {
	Env        string `yaml:"env"`
	LogLevel   string `yaml:"log_level"`
	HTTPServer `yaml:"http_server"`
	Link       `yaml:"link"`
	UI         `yaml:"ui"`
	CORS       `yaml:"cors"`
	Tracing    `yaml:"tracing"`
}

// SlogLevel returns the configured log level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type HTTPServer struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file"`
	KeyFile        string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Link configures generated links. An empty PublicOrigin means links use the
// origin of the request that generated them.
type Link struct {
	BasePath     string `yaml:"base_path"`
	PublicOrigin string `yaml:"public_origin"`
}

var defaultLink = Link{
	BasePath: "/api/main",
}

type UI struct {
	StatusTimeout time.Duration `yaml:"status_timeout"`
	CopyRevert    time.Duration `yaml:"copy_revert"`
}

var defaultUI = UI{
	StatusTimeout: 3 * time.Second,
	CopyRevert:    2 * time.Second,
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var defaultCORS = CORS{
	AllowedOrigins: []string{"https://*"},
}

// Tracing configures OpenTelemetry. Spans are exported over OTLP gRPC only
// when Endpoint is set.
type Tracing struct {
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

var defaultTracing = Tracing{
	SampleRatio: 1,
}

// Load reads the YAML config at path on top of the defaults. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path == "" {
		return &cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.LogLevel = "info"
	cfg.HTTPServer = defaultHTTPServer
	cfg.Link = defaultLink
	cfg.UI = defaultUI
	cfg.CORS = defaultCORS
	cfg.Tracing = defaultTracing
}
