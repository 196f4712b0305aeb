package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

type Config struct {
	Env     string `yaml:"env" env:"STOREFRONT_ENV" env-default:"local"`
	API     `yaml:"api"`
	Session `yaml:"session"`
	Sandbox `yaml:"sandbox"`
	Log     `yaml:"log"`
}

type API struct {
	BaseURL          string        `yaml:"base_url" env:"STOREFRONT_API_URL" env-default:"http://localhost:8080/api"`
	Timeout          time.Duration `yaml:"timeout" env:"STOREFRONT_TIMEOUT" env-default:"15s"`
	MaxUpload        string        `yaml:"max_upload" env:"STOREFRONT_MAX_UPLOAD" env-default:"10MB"`
	CloseConcurrency int           `yaml:"close_concurrency" env:"STOREFRONT_CLOSE_CONCURRENCY" env-default:"1"`
}

type Session struct {
	TokenDir string `yaml:"token_dir" env:"STOREFRONT_TOKEN_DIR"`
}

type Sandbox struct {
	Address   string `yaml:"address" env:"SANDBOX_ADDR" env-default:":8080"`
	JWTSecret string `yaml:"jwt_secret" env:"SANDBOX_JWT_SECRET" env-default:"sandbox-secret-change-me"`
	AdminUser string `yaml:"admin_email" env:"SANDBOX_ADMIN_EMAIL" env-default:"admin@example.com"`
	AdminPass string `yaml:"admin_password" env:"SANDBOX_ADMIN_PASSWORD" env-default:"admin"`
}

type Log struct {
	Level string `yaml:"level" env:"STOREFRONT_LOG_LEVEL" env-default:"warn"`
}

// MaxUploadBytes parses the configured upload limit
func (a API) MaxUploadBytes() (datasize.ByteSize, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(a.MaxUpload)); err != nil {
		return 0, fmt.Errorf("config: invalid max upload size %q: %w", a.MaxUpload, err)
	}
	return size, nil
}

// IsProd reports whether the prod environment is selected
func (c *Config) IsProd() bool {
	return c.Env == envProd
}

// Load reads a .env file when present, then either the YAML file at configPath
// (env vars still override) or the environment alone.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config: file not found: %w", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.TokenDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: unable to determine user home directory: %w", err)
		}
		cfg.TokenDir = filepath.Join(home, ".auction-storefront")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Env != envLocal && c.Env != envProd {
		return fmt.Errorf("config: env must be %q or %q, got %q", envLocal, envProd, c.Env)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("config: api base url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.CloseConcurrency < 1 {
		return fmt.Errorf("config: close concurrency must be at least 1, got %d", c.CloseConcurrency)
	}
	if _, err := c.MaxUploadBytes(); err != nil {
		return err
	}
	return nil
}
