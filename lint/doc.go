// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package lint checks that translations in PO catalogues keep the placeholders
of their source strings.

A [Linter] reads each file, parses it with package catalog, and compares the
placeholder tokens of every translated pair with package placeholder. Each
mismatch is written to the diagnostics stream as a block such as:

	Difference between msgid="Hello {name}" and msgstr="Hallo":
	  Missing from msgstr: {name}
	  at po/de.po:12

When annotations are enabled, every problem is also written as a GitHub
Actions workflow command:

	::error file=po/de.po,line=12::Missing from msgstr: {name}

Lines the parser cannot make sense of are logged as warnings and count as
failures. Nothing aborts a file early; a run reports every problem it finds and
[Result.Failed] tells the caller whether to exit non-zero.
*/
package lint
