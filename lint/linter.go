// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/pixivfe/polint/catalog"
	"codeberg.org/pixivfe/polint/core/audit"
	"codeberg.org/pixivfe/polint/placeholder"
)

// Options controls a Linter.
type Options struct {
	// Annotations enables GitHub Actions "::error" workflow commands.
	Annotations bool

	// Jobs is the number of files checked concurrently. Values below 2 check
	// files one after another.
	Jobs int

	// GotextLoader cross-checks every translated pair against gotext.
	GotextLoader bool
}

// Linter checks catalogues and writes diagnostics to a single stream.
type Linter struct {
	opts   Options
	out    io.Writer
	logger zerolog.Logger

	// readFile is swapped in tests.
	readFile func(name string) ([]byte, error)
}

// New returns a Linter writing diagnostics to out.
func New(out io.Writer, opts Options) *Linter {
	return &Linter{
		opts:     opts,
		out:      out,
		logger:   log.With().Str("sys", "lint").Logger(),
		readFile: catalog.ReadFile,
	}
}

// CheckPair reports whether entry keeps the placeholders of its msgid.
//
// Pairs with an empty msgid or msgstr are always valid. For an invalid pair
// the diagnostic block, preceded by annotations when enabled, is written to w.
func (l *Linter) CheckPair(w io.Writer, file string, entry catalog.Entry) (Finding, bool) {
	if !entry.Translated() {
		return Finding{}, true
	}

	diff := placeholder.Diff(entry.Msgid, entry.Msgstr)
	if diff.Empty() {
		return Finding{}, true
	}

	var lines []string

	for _, msg := range []string{diff.MissingMessage(), diff.ExtraMessage()} {
		if msg == "" {
			continue
		}

		if l.opts.Annotations {
			writeAnnotation(w, file, entry.Line, msg)
		}

		lines = append(lines, msg)
	}

	finding := Finding{
		Kind:    KindMismatch,
		Line:    entry.Line,
		Msgid:   entry.Msgid,
		Msgstr:  entry.Msgstr,
		Missing: diff.Missing,
		Extra:   diff.Extra,
		Message: lines[0],
	}

	writeDifference(w, file, finding, lines)

	return finding, false
}

// CheckFile lints the contents of one catalogue, writing diagnostics to w.
func (l *Linter) CheckFile(w io.Writer, name string, data []byte) FileResult {
	result := FileResult{File: name}

	if tag, ok := LocaleFromPath(name); ok {
		result.Locale = tag.String()
	}

	var entries []catalog.Entry

	for entry, err := range catalog.Entries(catalog.Lines(data)) {
		if err != nil {
			result.Findings = append(result.Findings, l.syntaxFinding(w, name, err))

			continue
		}

		entries = append(entries, entry)

		if finding, ok := l.CheckPair(w, name, entry); !ok {
			result.Findings = append(result.Findings, finding)
		}
	}

	result.Entries = len(entries)

	if l.opts.GotextLoader {
		for _, finding := range checkLoader(data, entries) {
			if l.opts.Annotations {
				writeAnnotation(w, name, finding.Line, finding.Message)
			}

			l.logger.Warn().
				Str("file", name).
				Int("line", finding.Line).
				Str("msgid", finding.Msgid).
				Msg(finding.Message)

			result.Findings = append(result.Findings, finding)
		}
	}

	return result
}

func (l *Linter) syntaxFinding(w io.Writer, name string, err error) Finding {
	var syntaxErr *catalog.SyntaxError
	if !errors.As(err, &syntaxErr) {
		syntaxErr = &catalog.SyntaxError{Err: err}
	}

	l.logger.Warn().
		Err(syntaxErr.Err).
		Str("file", name).
		Int("line", syntaxErr.Line).
		Stringer("state", syntaxErr.State).
		Str("input", syntaxErr.Text).
		Msg("Unexpected input")

	if l.opts.Annotations {
		writeAnnotation(w, name, syntaxErr.Line, syntaxErr.Message())
	}

	return Finding{
		Kind:    KindSyntax,
		Line:    syntaxErr.Line,
		Message: syntaxErr.Message(),
	}
}

// Run checks files in order and writes their diagnostics to the Linter's
// stream in the same order, whatever the number of jobs.
//
// A file that cannot be read stops the run; the returned Result then holds
// the files checked before it.
func (l *Linter) Run(ctx context.Context, files []string) (Result, error) {
	if l.opts.Jobs < 2 || len(files) < 2 {
		return l.runSequential(ctx, files)
	}

	return l.runParallel(ctx, files)
}

func (l *Linter) runSequential(ctx context.Context, files []string) (Result, error) {
	var res Result

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fileResult, err := l.checkPath(ctx, l.out, name)
		if err != nil {
			return res, err
		}

		res.Files = append(res.Files, fileResult)
	}

	return res, nil
}

func (l *Linter) runParallel(ctx context.Context, files []string) (Result, error) {
	var (
		results = make([]FileResult, len(files))
		outputs = make([]bytes.Buffer, len(files))
		errs    = make([]error, len(files))
	)

	var g errgroup.Group

	g.SetLimit(l.opts.Jobs)

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err

				return err
			}

			results[i], errs[i] = l.checkPath(ctx, &outputs[i], name)

			return errs[i]
		})
	}

	// Errors are reported in argument order below, not in completion order.
	_ = g.Wait()

	var res Result

	for i := range files {
		if errs[i] != nil {
			return res, errs[i]
		}

		if _, err := outputs[i].WriteTo(l.out); err != nil {
			return res, fmt.Errorf("failed to write diagnostics: %w", err)
		}

		res.Files = append(res.Files, results[i])
	}

	return res, nil
}

func (l *Linter) checkPath(ctx context.Context, w io.Writer, name string) (FileResult, error) {
	span := audit.Span{File: name}
	span.Begin(ctx)

	data, err := l.readFile(name)
	if err != nil {
		span.Error = err
		span.End()
		span.Log()

		return FileResult{}, err
	}

	result := l.CheckFile(w, name, data)

	span.Size = len(data)
	span.Locale = result.Locale
	span.Entries = result.Entries
	span.Findings = len(result.Findings)
	span.End()
	span.Log()

	return result, nil
}
