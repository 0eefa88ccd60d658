// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// print dumps the effective configuration when debug logging is enabled.
func (cfg *LintConfig) print() {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}

	log.Debug().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Msg("Starting polint")

	configYAML, err := yaml.MarshalWithOptions(*cfg, yaml.Indent(2))
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Debug().
		Msg("Application configuration:")
	fmt.Fprintln(os.Stderr, string(configYAML))
}
