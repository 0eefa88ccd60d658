// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEnvFile(t *testing.T) {
	t.Parallel()

	out := generateEnvFile()

	assert.Contains(t, out, "## Check\n# POLINT_JOBS=1\n# POLINT_GOTEXT_CHECK=false\n")
	assert.Contains(t, out, "# POLINT_ANNOTATIONS=auto\n")
	assert.Contains(t, out, "# POLINT_LOG_OUTPUTS=/dev/stderr\n")
	assert.NotContains(t, out, "Build")
}

func TestGenerateYAMLFile(t *testing.T) {
	t.Parallel()

	out := generateYAMLFile()

	assert.Contains(t, out, "\ncheck:\n  # jobs: 1\n")
	assert.Contains(t, out, "\nannotations:\n  # mode: auto\n")
}
