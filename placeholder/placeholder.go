// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package placeholder extracts interpolation tokens from message strings and
// compares the tokens of a source string with those of its translation.
//
// Three syntaxes are recognised:
//
//	{name} {0}            brace placeholders
//	<1> </1> <1/>         numbered tags
//	%s %(count)d %%       printf-style verbs
//
// A token's identity is its full matched text, so "{0}" and "%0" never
// compare equal.
package placeholder

import (
	"regexp"
	"slices"
	"strings"
)

// pattern matches any of {num} {str} <num> </num> <num/> %(str)s.
// Identifiers accept Unicode letters and digits.
var pattern = regexp.MustCompile(`(\{([\p{L}\p{N}_]+)\})|(</?\d+/?>)|(%(\([\p{L}\p{N}_]+\))?.)`)

// Extract returns every token in s, left to right, duplicates included.
func Extract(s string) []string {
	matches := pattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(matches))

	for _, m := range matches {
		if tok := firstGroup(m); tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// firstGroup returns the first non-empty capture group of a match.
// The outer group of each alternative spans the whole token.
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}

	return ""
}

// Set is an insertion-ordered set of tokens.
type Set struct {
	order []string
	index map[string]struct{}
}

// NewSet builds a set from tokens, keeping the first occurrence of each.
func NewSet(tokens []string) Set {
	s := Set{index: make(map[string]struct{}, len(tokens))}

	for _, tok := range tokens {
		if _, ok := s.index[tok]; ok {
			continue
		}

		s.index[tok] = struct{}{}
		s.order = append(s.order, tok)
	}

	return s
}

// Has reports whether tok is in the set.
func (s Set) Has(tok string) bool {
	_, ok := s.index[tok]

	return ok
}

// Len returns the number of distinct tokens.
func (s Set) Len() int {
	return len(s.order)
}

// Tokens returns the tokens in order of first appearance.
func (s Set) Tokens() []string {
	return slices.Clone(s.order)
}

// Minus returns the tokens of s that are not in other, in s's order.
func (s Set) Minus(other Set) []string {
	var out []string

	for _, tok := range s.order {
		if !other.Has(tok) {
			out = append(out, tok)
		}
	}

	return out
}

// Difference is the result of comparing a msgid with its msgstr.
type Difference struct {
	Missing []string // in msgid but not in msgstr
	Extra   []string // in msgstr but not in msgid
}

// Empty reports whether both sides carry the same tokens.
func (d Difference) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// MissingMessage returns "Missing from msgstr: ..." or "" when nothing is missing.
func (d Difference) MissingMessage() string {
	if len(d.Missing) == 0 {
		return ""
	}

	return "Missing from msgstr: " + strings.Join(d.Missing, " ")
}

// ExtraMessage returns "Unexpected in msgstr: ..." or "" when nothing was added.
func (d Difference) ExtraMessage() string {
	if len(d.Extra) == 0 {
		return ""
	}

	return "Unexpected in msgstr: " + strings.Join(d.Extra, " ")
}

// Diff compares the token sets of msgid and msgstr.
// Order and repetition of tokens do not matter.
func Diff(msgid, msgstr string) Difference {
	idSet := NewSet(Extract(msgid))
	strSet := NewSet(Extract(msgstr))

	return Difference{
		Missing: idSet.Minus(strSet),
		Extra:   strSet.Minus(idSet),
	}
}
