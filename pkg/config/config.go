// Package config loads and validates the application configuration from a
// YAML file with environment variable expansion.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:chow.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Catalog struct {
		File           string        `yaml:"file" json:"file" jsonschema:"description=JSON catalog file to import on startup and reloads"`
		ReloadInterval time.Duration `yaml:"reload_interval" json:"reload_interval" jsonschema:"default=1h,description=Interval between catalog reloads"`
	} `yaml:"catalog" json:"catalog" jsonschema:"description=Catalog source configuration"`

	Recommender RecommenderConfig `yaml:"recommender" json:"recommender" jsonschema:"description=Recommendation engine configuration"`
}

// RecommenderConfig holds recommendation engine settings
type RecommenderConfig struct {
	Strategy string        `yaml:"strategy" json:"strategy" jsonschema:"default=rules,enum=rules,enum=cosine,description=Scoring strategy"`
	TopN     int           `yaml:"top_n" json:"top_n" jsonschema:"default=3,minimum=1,description=Number of recommendations to return"`
	Weights  WeightsConfig `yaml:"weights" json:"weights" jsonschema:"description=Category weights for vector scoring"`
	Bonuses  BonusesConfig `yaml:"bonuses" json:"bonuses" jsonschema:"description=Match bonuses for rule scoring"`
}

// WeightsConfig holds per-category multipliers for vector scoring
type WeightsConfig struct {
	Breed     float64 `yaml:"breed" json:"breed" jsonschema:"default=2,minimum=0,description=Breed category weight"`
	Size      float64 `yaml:"size" json:"size" jsonschema:"default=1,minimum=0,description=Size category weight"`
	LifeStage float64 `yaml:"life_stage" json:"life_stage" jsonschema:"default=1,minimum=0,description=Life stage category weight"`
	Condition float64 `yaml:"condition" json:"condition" jsonschema:"default=3,minimum=0,description=Condition category weight"`
}

// BonusesConfig holds match bonuses for rule scoring
type BonusesConfig struct {
	Condition     float64 `yaml:"condition" json:"condition" jsonschema:"default=3,minimum=0,description=Condition match bonus"`
	SizeOrStage   float64 `yaml:"size_or_stage" json:"size_or_stage" jsonschema:"default=2,minimum=0,description=Size or life stage match bonus"`
	BreedExact    float64 `yaml:"breed_exact" json:"breed_exact" jsonschema:"default=1,minimum=0,description=Exact breed match bonus"`
	BreedWildcard float64 `yaml:"breed_wildcard" json:"breed_wildcard" jsonschema:"default=0.5,minimum=0,description=Wildcard breed bonus"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:chow.db?cache=shared&mode=rwc"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// catalog
	if c.Catalog.ReloadInterval == 0 {
		c.Catalog.ReloadInterval = time.Hour
	}

	// recommender
	if c.Recommender.Strategy == "" {
		c.Recommender.Strategy = "rules"
	}
	if c.Recommender.TopN == 0 {
		c.Recommender.TopN = 3
	}
	if c.Recommender.Weights == (WeightsConfig{}) {
		c.Recommender.Weights = WeightsConfig{Breed: 2, Size: 1, LifeStage: 1, Condition: 3}
	}
	if c.Recommender.Bonuses == (BonusesConfig{}) {
		c.Recommender.Bonuses = BonusesConfig{Condition: 3, SizeOrStage: 2, BreedExact: 1, BreedWildcard: 0.5}
	}
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
