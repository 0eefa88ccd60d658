// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile reads a whole catalogue into memory.
//
// Files ending in ".gz" or ".zst" are decompressed transparently.
func ReadFile(name string) ([]byte, error) {
	f, err := os.Open(name) // #nosec G304 -- catalogue paths come from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", name, err)
	}
	defer f.Close()

	var r io.Reader = f

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream in %s: %w", name, err)
		}
		defer zr.Close()

		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream in %s: %w", name, err)
		}
		defer zr.Close()

		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	return data, nil
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lines splits catalogue text into lines without their terminators.
// CRLF and a lone CR are treated as LF, and a trailing newline does not
// produce an extra empty line.
func Lines(data []byte) []string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(data) == 0 {
		return nil
	}

	text := lineEndings.Replace(string(data))
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
