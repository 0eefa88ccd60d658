// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

// Kind classifies a Finding.
type Kind string

const (
	// KindMismatch is a pair whose placeholder sets differ.
	KindMismatch Kind = "mismatch"
	// KindSyntax is a line the catalogue parser rejected.
	KindSyntax Kind = "syntax"
	// KindLoader is a pair that gotext resolves to a different msgstr.
	KindLoader Kind = "loader"
)

// Finding is one problem in a catalogue.
type Finding struct {
	Kind    Kind     `yaml:"kind"`
	Line    int      `yaml:"line"`
	Msgid   string   `yaml:"msgid,omitempty"`
	Msgstr  string   `yaml:"msgstr,omitempty"`
	Missing []string `yaml:"missing,omitempty"`
	Extra   []string `yaml:"extra,omitempty"`
	Message string   `yaml:"message"`
}

// FileResult is the outcome of checking one catalogue.
type FileResult struct {
	File     string    `yaml:"file"`
	Locale   string    `yaml:"locale,omitempty"`
	Entries  int       `yaml:"entries"`
	Findings []Finding `yaml:"findings,omitempty"`
}

// Failed reports whether the file had any finding.
func (r FileResult) Failed() bool {
	return len(r.Findings) > 0
}

// Count returns the number of findings of the given kind.
func (r FileResult) Count(kind Kind) int {
	n := 0

	for _, finding := range r.Findings {
		if finding.Kind == kind {
			n++
		}
	}

	return n
}

// Result aggregates the file results of a run, in argument order.
type Result struct {
	Files []FileResult
}

// Failed reports whether any file failed.
func (r Result) Failed() bool {
	for _, f := range r.Files {
		if f.Failed() {
			return true
		}
	}

	return false
}

// Count returns the number of findings of the given kind across all files.
func (r Result) Count(kind Kind) int {
	n := 0

	for _, f := range r.Files {
		n += f.Count(kind)
	}

	return n
}
