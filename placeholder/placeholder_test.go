// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"NoTokens", "Hello, world", nil},
		{"Brace", "Hello {name}, you are {0}", []string{"{name}", "{0}"}},
		{"UnicodeBrace", "{名前} {ñ_1}", []string{"{名前}", "{ñ_1}"}},
		{"BraceWithSpaceIsNotToken", "{ name }", nil},
		{"Tags", "<0>open</0> and <12/>", []string{"<0>", "</0>", "<12/>"}},
		{"NamedTagIsNotToken", "<b>bold</b>", nil},
		{"Printf", "%s of %d", []string{"%s", "%d"}},
		{"NamedPrintf", "%(count)d items", []string{"%(count)d"}},
		{"PercentPercent", "100%% sure", []string{"%%"}},
		{"PercentSpace", "50% off", []string{"% "}},
		{"TrailingPercent", "100%", nil},
		{"Duplicates", "{a} {b} {a}", []string{"{a}", "{b}", "{a}"}},
		{"Mixed", "%(count)d items <1>view</1>", []string{"%(count)d", "<1>", "</1>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Extract(tt.in))
		})
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		msgid       string
		msgstr      string
		wantMissing []string
		wantExtra   []string
	}{
		{
			name:   "Equal",
			msgid:  "Hello {name}",
			msgstr: "Bonjour {name}",
		},
		{
			name:   "OrderAndDuplicatesIgnored",
			msgid:  "{a} {b} {a}",
			msgstr: "{b} {a}",
		},
		{
			name:        "Missing",
			msgid:       "Hello {name}",
			msgstr:      "Hello",
			wantMissing: []string{"{name}"},
		},
		{
			name:      "Extra",
			msgid:     "Hi",
			msgstr:    "Hi {name}",
			wantExtra: []string{"{name}"},
		},
		{
			name:   "MixedGrammar",
			msgid:  "%(count)d items <1>view</1>",
			msgstr: "%(count)d <1>articles</1>",
		},
		{
			name:        "StylesAreDistinct",
			msgid:       "{0} files",
			msgstr:      "%0 fichiers",
			wantMissing: []string{"{0}"},
			wantExtra:   []string{"%0"},
		},
		{
			name:        "BothWays",
			msgid:       "<0>{user}</0> liked %s",
			msgstr:      "{user} a aimé %d",
			wantMissing: []string{"<0>", "</0>", "%s"},
			wantExtra:   []string{"%d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Diff(tt.msgid, tt.msgstr)

			assert.ElementsMatch(t, tt.wantMissing, d.Missing)
			assert.ElementsMatch(t, tt.wantExtra, d.Extra)
			assert.Equal(t, len(tt.wantMissing) == 0 && len(tt.wantExtra) == 0, d.Empty())
		})
	}
}

func TestDifferenceMessages(t *testing.T) {
	t.Parallel()

	d := Difference{Missing: []string{"{a}", "%s"}}
	assert.Equal(t, "Missing from msgstr: {a} %s", d.MissingMessage())
	assert.Empty(t, d.ExtraMessage())

	d = Difference{Extra: []string{"<1>"}}
	assert.Empty(t, d.MissingMessage())
	assert.Equal(t, "Unexpected in msgstr: <1>", d.ExtraMessage())
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet([]string{"{b}", "{a}", "{b}"})

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("{a}"))
	assert.False(t, s.Has("{c}"))
	assert.Equal(t, []string{"{b}", "{a}"}, s.Tokens())
	assert.Equal(t, []string{"{b}"}, s.Minus(NewSet([]string{"{a}"})))
	assert.Nil(t, s.Minus(s))
}
