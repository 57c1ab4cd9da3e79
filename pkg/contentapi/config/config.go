// Package config loads server configuration from the environment and seed
// fixtures from JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dulee/content-api/pkg/contentapi"
)

// Config represents server configuration for the content API
type Config struct {
	Port        string `env:"PORT" env-default:"4000"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Optional JSON fixture files. When unset, the built-in user fixture
	// is used and the content store starts empty.
	UserSeedPath    string `env:"USER_SEED_PATH" env-default:""`
	ContentSeedPath string `env:"CONTENT_SEED_PATH" env-default:""`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	switch c.Environment {
	case "development", "production", "testing":
		return nil
	default:
		return fmt.Errorf("unsupported environment: %s", c.Environment)
	}
}

// DefaultUsers returns the built-in user fixture
func DefaultUsers() []contentapi.User {
	return []contentapi.User{
		{
			ID:       uuid.MustParse("39bf588d-871d-4c51-8d60-1b5df88c1dbc"),
			Nickname: "dulee",
			ImgURL:   "/window.svg",
		},
		{
			ID:       uuid.MustParse("2f11b583-61d4-4106-bc66-03ebd8a3dbf5"),
			Nickname: "Anabelle",
			ImgURL:   "/globe.svg",
		},
	}
}

// LoadUsers returns the user seed: the JSON fixture at UserSeedPath when
// set, the built-in fixture otherwise.
func (c *Config) LoadUsers() ([]contentapi.User, error) {
	if c.UserSeedPath == "" {
		return DefaultUsers(), nil
	}

	data, err := os.ReadFile(c.UserSeedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user seed %s: %w", c.UserSeedPath, err)
	}

	var users []contentapi.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user seed %s: %w", c.UserSeedPath, err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user seed %s contains no users", c.UserSeedPath)
	}
	return users, nil
}

// LoadContents returns the content seed from ContentSeedPath, or nil when
// no path is configured.
func (c *Config) LoadContents() ([]contentapi.Content, error) {
	if c.ContentSeedPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(c.ContentSeedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read content seed %s: %w", c.ContentSeedPath, err)
	}

	var contents []contentapi.Content
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to parse content seed %s: %w", c.ContentSeedPath, err)
	}
	return contents, nil
}
