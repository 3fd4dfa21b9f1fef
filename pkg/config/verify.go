package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks that every top-level section of the config is described by the schema
// and that required fields are set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Ref         string                     `json:"$ref"`
		Definitions map[string]json.RawMessage `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	var root struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if raw, ok := schema.Definitions["Config"]; ok {
		if err := json.Unmarshal(raw, &root); err != nil {
			return fmt.Errorf("parse config definition: %w", err)
		}
	}

	// convert config to JSON and check sections are known to the schema
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	for key := range configMap {
		if _, ok := root.Properties[key]; !ok {
			return fmt.Errorf("config section %q is not in schema", key)
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.LLM.Enabled() && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm is enabled")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

// SchemaSections lists the top-level config sections described by a schema
func SchemaSections(s *jsonschema.Schema) []string {
	def, ok := s.Definitions["Config"]
	if !ok || def.Properties == nil {
		return nil
	}
	var res []string
	for pair := def.Properties.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, pair.Key)
	}
	slices.Sort(res)
	return res
}
