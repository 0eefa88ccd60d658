// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"slices"
)

// validation errors.
var (
	errInvalidJobs           = errors.New("check.jobs must be at least 1")
	errInvalidAnnotationMode = errors.New("invalid annotations.mode value")
	errInvalidLogLevel       = errors.New("invalid log.logLevel value")
	errInvalidLogFormat      = errors.New("invalid log.logFormat value")
)

var (
	validAnnotationModes = []AnnotationMode{AnnotationsAuto, AnnotationsAlways, AnnotationsNever}
	validLogLevels       = []string{"debug", "info", "warn", "error"}
	validLogFormats      = []string{"console", "json"}
)

// validate checks the configuration for values the linter cannot use.
func (cfg *LintConfig) validate() error {
	if cfg.Check.Jobs < 1 {
		return fmt.Errorf("%w: %d", errInvalidJobs, cfg.Check.Jobs)
	}

	if !slices.Contains(validAnnotationModes, cfg.Annotations.Mode) {
		return fmt.Errorf("%w: %q", errInvalidAnnotationMode, cfg.Annotations.Mode)
	}

	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
