// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	res := Result{Files: []FileResult{
		{File: "po/de.po", Locale: "de", Entries: 3, Findings: []Finding{
			{Kind: KindMismatch, Line: 7, Msgid: "Hello {name}", Msgstr: "Hallo", Missing: []string{"{name}"}, Message: "Missing from msgstr: {name}"},
			{Kind: KindSyntax, Line: 9, Message: `(0) Unexpected input: msgctxt "x"`},
		}},
		{File: "po/fr.po", Locale: "fr", Entries: 2},
	}}

	path := filepath.Join(t.TempDir(), "out", "report.yaml")
	require.NoError(t, WriteReport(path, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.True(t, got.Failed)
	assert.Equal(t, 1, got.Mismatches)
	assert.Equal(t, 1, got.Syntax)
	assert.Equal(t, 0, got.Loader)
	require.Len(t, got.Files, 2)
	assert.Equal(t, res.Files[0], got.Files[0])
	assert.Equal(t, "fr", got.Files[1].Locale)
	assert.Empty(t, got.Files[1].Findings)
}

func TestResultFailed(t *testing.T) {
	t.Parallel()

	assert.False(t, Result{}.Failed())
	assert.False(t, Result{Files: []FileResult{{File: "a.po"}, {File: "b.po"}}}.Failed())
	assert.True(t, Result{Files: []FileResult{{File: "a.po"}, {File: "b.po", Findings: []Finding{{Kind: KindSyntax}}}}}.Failed())
}

func TestCount(t *testing.T) {
	t.Parallel()

	first := FileResult{File: "a.po", Findings: []Finding{{Kind: KindMismatch}, {Kind: KindLoader}, {Kind: KindMismatch}}}
	second := FileResult{File: "b.po", Findings: []Finding{{Kind: KindSyntax}, {Kind: KindMismatch}}}

	assert.Equal(t, 2, first.Count(KindMismatch))
	assert.Zero(t, first.Count(KindSyntax))

	res := Result{Files: []FileResult{first, second}}
	assert.Equal(t, 3, res.Count(KindMismatch))
	assert.Equal(t, 1, res.Count(KindLoader))
	assert.Equal(t, 1, res.Count(KindSyntax))
}
