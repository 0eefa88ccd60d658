// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"io"
)

// Flag names.
const (
	flagConfig      = "config"
	flagJobs        = "jobs"
	flagAnnotations = "annotations"
	flagReport      = "report"
	flagGotext      = "gotext"
	flagLogLevel    = "log-level"
	flagVersion     = "version"

	defaultConfigFile = "./polint.yaml"
)

// CommandLine holds the parsed command line.
type CommandLine struct {
	// ConfigFile is the value of -config.
	ConfigFile string
	// ShowVersion is set by -version.
	ShowVersion bool
	// Files are the positional arguments, in order.
	Files []string

	jobs        int
	annotations string
	report      string
	gotext      bool
	logLevel    string

	set map[string]bool
}

// ParseCommandLine parses args, which exclude the program name.
// Usage and parse errors are written to output.
func ParseCommandLine(name string, args []string, output io.Writer) (*CommandLine, error) {
	cl := &CommandLine{set: make(map[string]bool)}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cl.ConfigFile, flagConfig, defaultConfigFile, "Path to a polint configuration file in YAML or TOML format.")
	fs.IntVar(&cl.jobs, flagJobs, 1, "Number of catalogs checked concurrently.")
	fs.StringVar(&cl.annotations, flagAnnotations, string(AnnotationsAuto), "GitHub Actions annotations: auto, always or never.")
	fs.StringVar(&cl.report, flagReport, "", "Write a YAML report to this path.")
	fs.BoolVar(&cl.gotext, flagGotext, false, "Cross-check translations against the gotext loader.")
	fs.StringVar(&cl.logLevel, flagLogLevel, "warn", "Log level: debug, info, warn or error.")
	fs.BoolVar(&cl.ShowVersion, flagVersion, false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Only flags given explicitly override other sources.
	fs.Visit(func(f *flag.Flag) {
		cl.set[f.Name] = true
	})

	cl.Files = fs.Args()

	return cl, nil
}

// IsSet reports whether the named flag was given on the command line.
func (cl *CommandLine) IsSet(name string) bool {
	return cl != nil && cl.set[name]
}

func (cl *CommandLine) apply(cfg *LintConfig) {
	if cl.IsSet(flagJobs) {
		cfg.Check.Jobs = cl.jobs
	}

	if cl.IsSet(flagGotext) {
		cfg.Check.GotextLoader = cl.gotext
	}

	if cl.IsSet(flagAnnotations) {
		cfg.Annotations.Mode = AnnotationMode(cl.annotations)
	}

	if cl.IsSet(flagReport) {
		cfg.Report.Path = cl.report
	}

	if cl.IsSet(flagLogLevel) {
		cfg.Log.Level = cl.logLevel
	}
}
