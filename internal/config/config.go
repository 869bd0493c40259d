package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// Key case options accepted by Output.KeyCase.
const (
	KeyCaseNone   = "none"
	KeyCaseSnake  = "snake"
	KeyCaseCamel  = "camel"
	KeyCasePascal = "pascal"
)

// Config represents the complete configuration for jsonpp
type Config struct {
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
}

// OutputConfig controls how documents are rendered
type OutputConfig struct {
	Indent  int    `yaml:"indent"`
	Compact bool   `yaml:"compact"`
	KeyCase string `yaml:"key_case"`
}

// BatchConfig controls multi-file mode
type BatchConfig struct {
	Jobs int `yaml:"jobs"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent:  2,
			Compact: false,
			KeyCase: KeyCaseNone,
		},
		Batch: BatchConfig{
			Jobs: 4,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonpp.yml", ".jsonpp.yaml", "jsonpp.yml", "jsonpp.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	if c.Batch.Jobs < 1 {
		return fmt.Errorf("batch.jobs must be at least 1, got %d", c.Batch.Jobs)
	}
	switch c.Output.KeyCase {
	case KeyCaseNone, KeyCaseSnake, KeyCaseCamel, KeyCasePascal:
		return nil
	default:
		return fmt.Errorf("output.key_case must be one of none, snake, camel or pascal, got %q", c.Output.KeyCase)
	}
}

// KeyFunc returns the key transformation selected by Output.KeyCase, or nil
// when keys should be left untouched
func (c *Config) KeyFunc() func(string) string {
	switch c.Output.KeyCase {
	case KeyCaseSnake:
		return strcase.ToSnake
	case KeyCaseCamel:
		return strcase.ToLowerCamel
	case KeyCasePascal:
		return strcase.ToCamel
	default:
		return nil
	}
}
