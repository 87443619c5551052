package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/linesplice/pkg/config"
)

// envVarPrefix is the prefix for all linesplice environment variables.
const envVarPrefix = "LINESPLICE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"TARGET":          {field: "target", typ: envTypeString, description: "File to splice"},
	"CONTENT":         {field: "content", typ: envTypeString, description: "Replacement content file"},
	"DRY_RUN":         {field: "dry_run", typ: envTypeBool, description: "Dry-run mode: true or false"},
	"FORMAT":          {field: "format", typ: envTypeString, description: "Output format: text, diff, or json"},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool, description: "Back up the target before writing: true or false"},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString, description: "Backup mode: sidecar or none"},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool, description: "Disable backups: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with LINESPLICE_ (e.g., LINESPLICE_TARGET).
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, envMappings[suffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "target":
		cfg.Target = value
	case "content":
		cfg.Content = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "dry_run":
		cfg.DryRun = value
	case "backups.enabled":
		cfg.Backups.Enabled = &value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
