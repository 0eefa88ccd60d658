// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
polint checks that the translations in PO catalogues keep the placeholders
({name}, <1>, %(count)d) of their source strings.

Usage:

	polint [flags] <file> [<file> ...]

It exits with status 1 if any translation is missing a placeholder, adds one,
or if a catalogue contains lines it cannot parse.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/polint/config"
	"codeberg.org/pixivfe/polint/core/audit"
	"codeberg.org/pixivfe/polint/lint"
)

const (
	exitOK   = 0
	exitFail = 1
)

// main is the entry point of the application.
func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run lints the catalogues named in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	audit.SetDefaultLogger()

	name := filepath.Base(args[0])

	cl, err := config.ParseCommandLine(name, args[1:], stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitFail
	}

	if cl.ShowVersion {
		fmt.Fprintf(stdout, "%s %s\n", name, config.Version())

		return exitOK
	}

	if len(cl.Files) == 0 {
		fmt.Fprintf(stderr, "%s: no files\n", name)
		fmt.Fprintf(stderr, "use: %s <files>\n", name)

		return exitFail
	}

	if err := config.Global.LoadConfig(cl); err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")

		return exitFail
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	linter := lint.New(stderr, lint.Options{
		Annotations:  config.Global.AnnotationsEnabled(),
		Jobs:         config.Global.Check.Jobs,
		GotextLoader: config.Global.Check.GotextLoader,
	})

	res, err := linter.Run(ctx, cl.Files)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check catalogs")

		return exitFail
	}

	if path := config.Global.Report.Path; path != "" {
		if err := lint.WriteReport(path, res); err != nil {
			log.Error().Err(err).Msg("Failed to write report")

			return exitFail
		}

		log.Info().Str("path", path).Msg("Wrote report")
	}

	if res.Failed() {
		log.Info().
			Int("files", len(res.Files)).
			Int("mismatches", res.Count(lint.KindMismatch)).
			Int("syntax_errors", res.Count(lint.KindSyntax)).
			Int("loader_mismatches", res.Count(lint.KindLoader)).
			Msg("Catalogs have problems")

		return exitFail
	}

	log.Info().Int("files", len(res.Files)).Msg("All catalogs passed")

	return exitOK
}
