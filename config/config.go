// Package config loads the module configuration: the volume-delay function
// used for assignment and the logger settings.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (vdf.DefaultConfig, logging.DefaultConfig)
//  2. a YAML file (Load) or an inline YAML document (Parse)
//  3. environment variables prefixed TRAFFIC_, Load only
//     (TRAFFIC_COSTFUNCTION_ALPHA=0.2, TRAFFIC_LOGGING_LEVEL=debug)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/traffic/logging"
	"github.com/katalvlaran/traffic/vdf"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRAFFIC"

// Config is the root configuration record.
type Config struct {
	CostFunction vdf.Config     `yaml:"costFunction" mapstructure:"costfunction"`
	Logging      logging.Config `yaml:"logging" mapstructure:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CostFunction: vdf.DefaultConfig(),
		Logging:      logging.DefaultConfig(),
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.CostFunction.Validate(); err != nil {
		return fmt.Errorf("config: costFunction: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: logging: %w", err)
	}

	return nil
}

// Load reads the YAML file at path over the defaults, applies TRAFFIC_*
// environment overrides and validates the result. An empty path skips the
// file and uses defaults plus environment.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes an inline YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// newViper returns a viper instance seeded with defaults and env bindings.
// Every key needs a default so that AutomaticEnv can resolve it on Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("costfunction.kind", d.CostFunction.Kind)
	v.SetDefault("costfunction.alpha", d.CostFunction.Alpha)
	v.SetDefault("costfunction.beta", d.CostFunction.Beta)
	v.SetDefault("costfunction.coefficients", d.CostFunction.Coefficients)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.development", d.Logging.Development)

	return v
}
