// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	reportDirPermissions  = 0o755
	reportFilePermissions = 0o644
)

// Report is the YAML document written by WriteReport.
type Report struct {
	Failed     bool         `yaml:"failed"`
	Mismatches int          `yaml:"mismatches"`
	Syntax     int          `yaml:"syntaxErrors"`
	Loader     int          `yaml:"loaderMismatches"`
	Files      []FileResult `yaml:"files"`
}

// NewReport summarises a Result.
func NewReport(res Result) Report {
	return Report{
		Failed:     res.Failed(),
		Mismatches: res.Count(KindMismatch),
		Syntax:     res.Count(KindSyntax),
		Loader:     res.Count(KindLoader),
		Files:      res.Files,
	}
}

// WriteReport writes a YAML summary of res to path, creating parent directories.
func WriteReport(path string, res Result) error {
	out, err := yaml.MarshalWithOptions(NewReport(res), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), reportDirPermissions); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(path, out, reportFilePermissions); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
