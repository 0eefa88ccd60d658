// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
)

// Global exposes the linter configuration.
var Global LintConfig

// Possible values for AnnotationMode.
const (
	AnnotationsAuto   AnnotationMode = "auto"
	AnnotationsAlways AnnotationMode = "always"
	AnnotationsNever  AnnotationMode = "never"
)

// AnnotationMode selects when GitHub Actions annotations are written.
type AnnotationMode string

// githubActionsEnv is set to "true" by GitHub Actions on every runner.
const githubActionsEnv = "GITHUB_ACTIONS"

// LintConfig holds the application configuration.
type LintConfig struct {
	Build buildInfo `toml:"-" yaml:"-"`

	Check struct {
		// Number of catalogues checked concurrently.
		Jobs int `env:"POLINT_JOBS,overwrite" toml:"jobs" yaml:"jobs"`
		// Cross-check translated pairs against the gotext runtime loader.
		GotextLoader bool `env:"POLINT_GOTEXT_CHECK,overwrite" toml:"gotextLoader" yaml:"gotextLoader"`
	} `toml:"check" yaml:"check"`

	Annotations struct {
		Mode AnnotationMode `env:"POLINT_ANNOTATIONS,overwrite" toml:"mode" yaml:"mode"`
	} `toml:"annotations" yaml:"annotations"`

	Report struct {
		// Path of a YAML summary written after the run. Empty disables it.
		Path string `env:"POLINT_REPORT,overwrite" toml:"path" yaml:"path"`
	} `toml:"report" yaml:"report"`

	Log struct {
		Level   string   `env:"POLINT_LOG_LEVEL,overwrite" toml:"logLevel" yaml:"logLevel"`
		Outputs []string `env:"POLINT_LOG_OUTPUTS,overwrite" toml:"logOutputs" yaml:"logOutputs"`
		Format  string   `env:"POLINT_LOG_FORMAT,overwrite" toml:"logFormat" yaml:"logFormat"`
	} `toml:"log" yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
//
// Sources are applied in increasing precedence: defaults, the configuration
// file, a .env file, environment variables, and finally flags set on cl.
func (cfg *LintConfig) LoadConfig(cl *CommandLine) error {
	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (POLINT_CONFIGFILE)
	// 3. Default path with fallback check
	if cl.IsSet(flagConfig) {
		configFilePath = cl.ConfigFile
	} else if envVar := os.Getenv("POLINT_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = defaultConfigFile
		// Then, perform a fallback check for "./polint.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./polint.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readFile(configFilePath); err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	cl.apply(cfg)

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// AnnotationsEnabled reports whether GitHub Actions annotations should be written.
// In auto mode this depends on the GITHUB_ACTIONS environment variable.
func (cfg *LintConfig) AnnotationsEnabled() bool {
	return cfg.annotationsEnabled(os.Getenv)
}

func (cfg *LintConfig) annotationsEnabled(getenv func(string) string) bool {
	switch cfg.Annotations.Mode {
	case AnnotationsAlways:
		return true
	case AnnotationsNever:
		return false
	case AnnotationsAuto:
		return getenv(githubActionsEnv) != ""
	default:
		return false
	}
}
