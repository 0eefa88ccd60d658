// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"codeberg.org/pixivfe/polint/catalog"
)

// checkLoader loads data with gotext, the runtime the catalogues are served
// with, and reports translated entries that it resolves to a different msgstr.
// This catches duplicates that shadow each other and escapes the two parsers
// read differently.
func checkLoader(data []byte, entries []catalog.Entry) []Finding {
	po := gotext.NewPo()
	po.Parse(data)

	// Looked up directly; Po.Get would treat the msgid as a format string.
	translations := po.GetDomain().GetTranslations()

	var findings []Finding

	for _, e := range entries {
		if !e.Translated() {
			continue
		}

		got := e.Msgid
		if tr, ok := translations[e.Msgid]; ok {
			got = tr.Get()
		}

		if got == e.Msgstr {
			continue
		}

		findings = append(findings, Finding{
			Kind:    KindLoader,
			Line:    e.Line,
			Msgid:   e.Msgid,
			Msgstr:  e.Msgstr,
			Message: fmt.Sprintf("gotext resolves msgid to %q", got),
		})
	}

	return findings
}
