// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePO = "msgid \"Hello {name}\"\nmsgstr \"Hallo {name}\"\n"

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	plain := filepath.Join(dir, "de.po")
	require.NoError(t, os.WriteFile(plain, []byte(samplePO), 0o600))

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(samplePO))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	gzipped := filepath.Join(dir, "de.po.gz")
	require.NoError(t, os.WriteFile(gzipped, gz.Bytes(), 0o600))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)

	zstded := filepath.Join(dir, "de.po.zst")
	require.NoError(t, os.WriteFile(zstded, enc.EncodeAll([]byte(samplePO), nil), 0o600))
	require.NoError(t, enc.Close())

	for _, name := range []string{plain, gzipped, zstded} {
		data, err := ReadFile(name)
		require.NoError(t, err, name)
		assert.Equal(t, samplePO, string(data), name)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.po"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"NoTrailingNewline", "a\nb", []string{"a", "b"}},
		{"TrailingNewline", "a\nb\n", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"CR", "a\rb\r\rc\r", []string{"a", "b", "", "c"}},
		{"MixedEndings", "a\r\nb\rc\n", []string{"a", "b", "c"}},
		{"BlankLinesKept", "a\n\nb\n\n", []string{"a", "", "b", ""}},
		{"BOM", "\xEF\xBB\xBFmsgid \"x\"\n", []string{`msgid "x"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Lines([]byte(tt.in)))
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	got, err := Unquote(`"foo\n\tbar"`)
	require.NoError(t, err)
	assert.Equal(t, "foo\n\tbar", got)

	_, err = Unquote("`raw`")
	assert.ErrorIs(t, err, ErrNotQuoted)

	_, err = Unquote(`"a" "b"`)
	assert.ErrorIs(t, err, ErrBadLiteral)

	_, err = Unquote(`"`)
	assert.ErrorIs(t, err, ErrNotQuoted)
}
