// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

// SetDefaults populates the configuration with default values.
func (cfg *LintConfig) SetDefaults() {
	cfg.Check.Jobs = 1
	cfg.Check.GotextLoader = false

	cfg.Annotations.Mode = AnnotationsAuto

	cfg.Report.Path = ""

	cfg.Log.Level = "warn"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
