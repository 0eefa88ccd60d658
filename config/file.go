// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// readFile loads a YAML or TOML configuration file. The format is chosen by
// extension; anything but ".toml" is read as YAML. A missing file is skipped.
func (cfg *LintConfig) readFile(configFilePath string) error {
	if configFilePath == "" {
		return nil
	}

	_, err := os.Stat(configFilePath)
	if os.IsNotExist(err) {
		log.Debug().
			Str("path", configFilePath).
			Msg("No configuration file found, skipping")

		return nil
	}

	raw, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	if strings.EqualFold(filepath.Ext(configFilePath), ".toml") {
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return fmt.Errorf("failed to parse TOML from %s: %w", configFilePath, err)
		}
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", configFilePath, err)
	}

	log.Info().
		Str("path", configFilePath).
		Msg("Successfully loaded configuration")

	return nil
}
