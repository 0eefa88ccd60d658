// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lint

import (
	"fmt"
	"io"
	"strings"
)

// annotationEscaper applies the data encoding of GitHub workflow commands.
var annotationEscaper = strings.NewReplacer("\r", "", "\n", "", "%", "%25")

// propertyEscaper encodes workflow command property values such as file=.
var propertyEscaper = strings.NewReplacer(
	"%", "%25",
	"\r", "%0D",
	"\n", "%0A",
	":", "%3A",
	",", "%2C",
)

// writeAnnotation writes a single "::error" workflow command.
func writeAnnotation(w io.Writer, file string, line int, message string) {
	fmt.Fprintf(w, "::error file=%s,line=%d::%s\n", propertyEscaper.Replace(file), line, annotationEscaper.Replace(message))
}

// writeDifference writes the human-readable block for a mismatched pair.
func writeDifference(w io.Writer, file string, f Finding, lines []string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Difference between msgid=\"%s\" and msgstr=\"%s\":\n", f.Msgid, f.Msgstr)

	for _, line := range lines {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	fmt.Fprintf(&b, "  at %s:%d\n\n", file, f.Line)

	_, _ = io.WriteString(w, b.String())
}
