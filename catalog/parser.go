// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// State is the position of a Parser within an entry.
type State int

// Parser states. The numeric values appear in SyntaxError.Message.
const (
	// AwaitMsgid expects a msgid line. Blank lines are skipped.
	AwaitMsgid State = iota
	// AwaitMsgstr expects a msgstr line or a continuation of the msgid.
	AwaitMsgstr
	// AwaitSeparator expects a blank line or a continuation of the msgstr.
	AwaitSeparator
)

func (s State) String() string {
	switch s {
	case AwaitMsgid:
		return "await-msgid"
	case AwaitMsgstr:
		return "await-msgstr"
	case AwaitSeparator:
		return "await-separator"
	default:
		return "unknown"
	}
}

const (
	keywordMsgid  = "msgid"
	keywordMsgstr = "msgstr"
)

// Parser assembles entries from catalogue lines.
//
// The zero value is ready to use. Feed it every line of a file in order,
// then call Finish once.
type Parser struct {
	state  State
	msgid  string
	msgstr string
	line   int
}

// State returns the current state.
func (p *Parser) State() State {
	return p.state
}

// Feed consumes one raw line. lineno is the 1-based line number.
//
// It returns the completed entry and true when the line closes an entry.
// A non-nil error is always a *SyntaxError; the pending entry is left as it
// was, so the caller may keep feeding lines.
func (p *Parser) Feed(lineno int, raw string) (Entry, bool, error) {
	if strings.HasPrefix(raw, "#") {
		return Entry{}, false, nil
	}

	line := strings.TrimSpace(raw)

	switch p.state {
	case AwaitMsgid:
		if line == "" {
			return Entry{}, false, nil
		}

		if lit, ok := cutKeyword(line, keywordMsgid); ok {
			s, err := Unquote(lit)
			if err != nil {
				return Entry{}, false, p.fail(lineno, line, err)
			}

			p.msgid = s
			p.state = AwaitMsgstr

			return Entry{}, false, nil
		}

	case AwaitMsgstr:
		if lit, ok := cutKeyword(line, keywordMsgstr); ok {
			s, err := Unquote(lit)
			if err != nil {
				return Entry{}, false, p.fail(lineno, line, err)
			}

			p.msgstr = s
			p.line = lineno
			p.state = AwaitSeparator

			return Entry{}, false, nil
		}

		if strings.HasPrefix(line, `"`) {
			s, err := Unquote(line)
			if err != nil {
				return Entry{}, false, p.fail(lineno, line, err)
			}

			p.msgid += s

			return Entry{}, false, nil
		}

	case AwaitSeparator:
		if line == "" {
			entry := p.pending()
			p.reset()

			return entry, true, nil
		}

		if strings.HasPrefix(line, `"`) {
			s, err := Unquote(line)
			if err != nil {
				return Entry{}, false, p.fail(lineno, line, err)
			}

			p.msgstr += s

			return Entry{}, false, nil
		}
	}

	return Entry{}, false, p.fail(lineno, line, ErrUnexpectedInput)
}

// Finish flushes an entry left open at end of file, for example a msgstr
// on the last line with no trailing blank line.
func (p *Parser) Finish() (Entry, bool) {
	if p.state == AwaitMsgid {
		return Entry{}, false
	}

	entry := p.pending()
	p.reset()

	return entry, true
}

func (p *Parser) pending() Entry {
	return Entry{Msgid: p.msgid, Msgstr: p.msgstr, Line: p.line}
}

func (p *Parser) reset() {
	*p = Parser{}
}

func (p *Parser) fail(lineno int, line string, err error) error {
	if !errors.Is(err, ErrUnexpectedInput) {
		err = fmt.Errorf("%w: %w", ErrUnexpectedInput, err)
	}

	return &SyntaxError{Line: lineno, State: p.state, Text: line, Err: err}
}

// cutKeyword matches `<keyword><whitespace><rest>` and returns rest.
// "msgid_plural" does not match "msgid".
func cutKeyword(line, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(line, keyword)
	if !ok {
		return "", false
	}

	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(trimmed) == len(rest) {
		return "", false
	}

	return trimmed, true
}

// Entries returns an iterator over the entries of a catalogue.
//
// Each step yields either an entry with a nil error, or a zero Entry with a
// *SyntaxError. Iteration continues past syntax errors.
func Entries(lines []string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		var p Parser

		for i, line := range lines {
			entry, ok, err := p.Feed(i+1, line)
			if err != nil {
				if !yield(Entry{}, err) {
					return
				}

				continue
			}

			if ok && !yield(entry, nil) {
				return
			}
		}

		if entry, ok := p.Finish(); ok {
			yield(entry, nil)
		}
	}
}

// Parse collects all entries and syntax errors of a catalogue.
func Parse(lines []string) ([]Entry, []*SyntaxError) {
	var (
		entries []Entry
		errs    []*SyntaxError
	)

	for entry, err := range Entries(lines) {
		if err != nil {
			var syntaxErr *SyntaxError
			if errors.As(err, &syntaxErr) {
				errs = append(errs, syntaxErr)
			}

			continue
		}

		entries = append(entries, entry)
	}

	return entries, errs
}
