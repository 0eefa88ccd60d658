// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// LocaleFromPath guesses the locale of a catalogue from its path.
//
// Both flat layouts (po/pt_BR.po, po/de.po.gz) and gettext directory layouts
// (locale/pt_BR/LC_MESSAGES/app.po) are understood. Templates (.pot) have no
// locale.
func LocaleFromPath(name string) (language.Tag, bool) {
	base := filepath.Base(name)

	for _, ext := range []string{".gz", ".zst"} {
		base = strings.TrimSuffix(base, ext)
	}

	if strings.HasSuffix(base, ".pot") {
		return language.Und, false
	}

	candidates := []string{strings.TrimSuffix(base, ".po")}

	dir := filepath.Dir(name)
	if filepath.Base(dir) == "LC_MESSAGES" {
		candidates = append([]string{filepath.Base(filepath.Dir(dir))}, candidates...)
	}

	for _, c := range candidates {
		// Accept both underscore and hyphen.
		t, err := language.Parse(strings.ReplaceAll(c, "_", "-"))
		if err == nil {
			return t, true
		}
	}

	return language.Und, false
}
