package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema to catch a stale or corrupted generated file
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Validate performs basic validation of config values
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}

	if c.Recommender.Strategy != "rules" && c.Recommender.Strategy != "cosine" {
		return fmt.Errorf("recommender.strategy must be rules or cosine, got %q", c.Recommender.Strategy)
	}
	if c.Recommender.TopN <= 0 {
		return fmt.Errorf("recommender.top_n must be positive, got %d", c.Recommender.TopN)
	}

	weights := []struct {
		name  string
		value float64
	}{
		{"recommender.weights.breed", c.Recommender.Weights.Breed},
		{"recommender.weights.size", c.Recommender.Weights.Size},
		{"recommender.weights.life_stage", c.Recommender.Weights.LifeStage},
		{"recommender.weights.condition", c.Recommender.Weights.Condition},
		{"recommender.bonuses.condition", c.Recommender.Bonuses.Condition},
		{"recommender.bonuses.size_or_stage", c.Recommender.Bonuses.SizeOrStage},
		{"recommender.bonuses.breed_exact", c.Recommender.Bonuses.BreedExact},
		{"recommender.bonuses.breed_wildcard", c.Recommender.Bonuses.BreedWildcard},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", w.name, w.value)
		}
	}

	return nil
}
