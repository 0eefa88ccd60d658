// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedInput is wrapped by a SyntaxError for a line that does not
	// fit the parser's current state.
	ErrUnexpectedInput = errors.New("unexpected input")

	// ErrNotQuoted is returned by Unquote for text that does not start with a double quote.
	ErrNotQuoted = errors.New("literal is not double-quoted")

	// ErrBadLiteral is returned by Unquote when the literal cannot be decoded.
	ErrBadLiteral = errors.New("invalid string literal")
)

// SyntaxError describes a line that could not be parsed.
type SyntaxError struct {
	Line  int    // 1-based line number
	State State  // parser state when the line was read
	Text  string // the offending line, trimmed
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %v: %q", e.Line, e.State, e.Err, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Message returns the short single-line form used in CI annotations,
// for example `(1) Unexpected input: msgctxt "menu"`.
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("(%d) Unexpected input: %s", int(e.State), e.Text)
}
