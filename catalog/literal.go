// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"fmt"
	"strconv"
)

// Unquote decodes a double-quoted string literal such as `"foo\n\tbar"`.
//
// Escapes follow Go's interpreted string literal rules, which cover the
// escapes gettext tools emit (\n, \t, \", \\) as well as \uXXXX and \xNN.
// Back-quoted and single-quoted literals are rejected.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' {
		return "", fmt.Errorf("%w: %s", ErrNotQuoted, lit)
	}

	s, err := strconv.Unquote(lit)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadLiteral, err)
	}

	return s, nil
}
