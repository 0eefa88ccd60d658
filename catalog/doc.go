// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package catalog reads PO-style translation catalogues into msgid/msgstr pairs.

Only the subset of the gettext format needed to compare a source string with
its translation is understood:

	# comments are skipped anywhere
	msgid "Hello, {name}"
	msgstr "Bonjour, "
	"{name}"

Entries are separated by blank lines. Quoted continuation lines are decoded
and concatenated onto the msgid or msgstr they follow, without a separator.

The parser is a small state machine ([Parser]) that is fed one line at a
time. [Entries] wraps it in an iterator, and [Parse] collects everything into
slices. Lines that do not fit the grammar are reported as [*SyntaxError]
values; parsing always continues with the next line.

Metadata such as msgctxt, msgid_plural and flag comments is not modelled.
A msgctxt or msgid_plural line is reported as unexpected input.
*/
package catalog
