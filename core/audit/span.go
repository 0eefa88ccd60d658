// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Span represents the check of one catalogue file.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration

	File     string
	Locale   string
	Size     int
	Entries  int
	Findings int
	Error    error
}

// Begin starts timing and opens a runtime/trace task for the file.
func (span *Span) Begin(ctx context.Context) {
	span.start = time.Now()

	taskCtx, task := trace.NewTask(ctx, "lint.file")
	trace.Log(taskCtx, "file", span.File)

	span.task = task
}

// End stops timing. Calling it more than once is harmless.
func (span *Span) End() {
	// the task is ended once
	if span.task != nil {
		span.duration = time.Since(span.start)
		span.task.End()
		span.task = nil
	}
}

// Duration returns the time between Begin and End.
func (span Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span at debug level.
func (span Span) Log() {
	event := log.Debug()

	event.Str("sys", "audit")
	event.Str("file", span.File)
	event.Str("size", humanizeSize(span.Size))
	event.Int("entries", span.Entries)
	event.Int("findings", span.Findings)
	event.Dur("dur", span.duration)

	if span.Locale != "" {
		event.Str("locale", span.Locale)
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Msg("Checked catalog")
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
	bytesInGB = bytesInMB * bytesInKB
)

func humanizeSize(x int) string {
	if x < bytesInKB {
		return strconv.Itoa(x)
	}

	if x < bytesInMB {
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	}

	if x < bytesInGB {
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}

	return fmt.Sprintf("%.2fG", float64(x)/bytesInGB)
}
