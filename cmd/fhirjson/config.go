package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gofhir/models/pkg/logger"
)

// EnvPrefix prefixes the environment variables read by the CLI, e.g.
// FHIRJSON_STRICT.
const EnvPrefix = "FHIRJSON"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	// OutputOutcome writes one OperationOutcome per document, one per line.
	// Commands without per-document results fall back to text.
	OutputOutcome = "outcome"
)

// Config holds the CLI settings shared by all commands. Flags win over
// FHIRJSON_* environment variables, which win over the defaults.
type Config struct {
	Strict         bool     `mapstructure:"strict"`
	CheckModifiers bool     `mapstructure:"check_modifiers"`
	Modifiers      []string `mapstructure:"modifiers" validate:"dive,url"`
	Workers        int      `mapstructure:"workers" validate:"gte=1,lte=1024"`
	LogLevel       string   `mapstructure:"log_level" validate:"oneof=debug info warn warning error none off"`
	Output         string   `mapstructure:"output" validate:"oneof=json text outcome"`
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.Bool("strict", false, "Reject unknown elements")
	flags.Bool("check-modifiers", false, "Reject modifier extensions that are not understood")
	flags.StringSlice("modifier", nil, "Modifier extension URL to accept (repeatable)")
	flags.Int("workers", runtime.NumCPU(), "Number of parallel decode workers")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error, none")
	flags.StringP("output", "o", OutputText, "Output format: text, json, outcome")

	bindings := map[string]string{
		"strict":          "strict",
		"check_modifiers": "check-modifiers",
		"modifiers":       "modifier",
		"workers":         "workers",
		"log_level":       "log-level",
		"output":          "output",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelWarn
	}
	return level
}
