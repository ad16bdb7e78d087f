package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkSections(&schema, configMap); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkSections verifies every config section is described by the schema
func checkSections(schema *jsonschema.Schema, configMap map[string]any) error {
	root := schema
	if def, ok := schema.Definitions[strings.TrimPrefix(schema.Ref, "#/$defs/")]; ok {
		// reflected schemas keep the root type under $defs
		root = def
	}
	if root.Properties == nil {
		return fmt.Errorf("schema has no properties")
	}

	var missing []string
	for key := range configMap {
		if _, ok := root.Properties.Get(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("sections not in schema: %v", missing)
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check database config
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	// check events config if enabled
	if !cfg.Events.Disabled {
		if cfg.Events.Timeout == 0 {
			return fmt.Errorf("events.timeout is required when events are enabled")
		}
		if len(cfg.Events.Sites) == 0 && len(cfg.Events.Feeds) == 0 {
			return fmt.Errorf("events.sites or events.feeds are required when events are enabled")
		}
	}

	if cfg.Hints.Provider == HintsRedis && cfg.Hints.RedisURL == "" {
		return fmt.Errorf("hints.redis_url is required for redis provider")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
