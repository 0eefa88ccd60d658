// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

// Entry is one msgid/msgstr pair.
type Entry struct {
	Msgid  string
	Msgstr string

	// Line is the 1-based line on which msgstr started. It is 0 when the
	// file ended before a msgstr line was seen.
	Line int
}

// Translated reports whether both sides of the pair are non-empty.
// The header entry (empty msgid) and untranslated entries are not translated.
func (e Entry) Translated() bool {
	return e.Msgid != "" && e.Msgstr != ""
}
