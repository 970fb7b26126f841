// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// blankRunRe matches runs of three or more newlines for whitespace
// normalization.
var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Transpile converts one Markdown-dialect document into LaTeX body text.
// The passes run in a fixed order, each consuming the previous pass's full
// output. The order is load-bearing: citations run after emphasis and
// before table conversion and list wrapping, so that list-item and
// table-cell escaping sees already-emitted \cite commands and the Escape
// guard leaves them alone. Reordering any two passes must be re-verified
// against the pipeline tests (R6.1).
//
// Transpile is a pure function: no I/O, no state shared across calls.
// Documents may be transpiled concurrently with no coordination. Malformed
// constructs degrade locally (dropped table, defaulted metadata, literal
// passthrough); only invalid UTF-8 input is a hard error, because guessing
// a replacement encoding would corrupt the document downstream (R6.5).
func Transpile(markdown string) (string, error) {
	if !utf8.ValidString(markdown) {
		return "", fmt.Errorf("transpile: input is not valid UTF-8")
	}

	text := expandPlaceholders(markdown)
	text = stripResidualMetadata(text)
	text = convertHeaders(text)
	text = convertEmphasis(text)
	text = rewriteMultiCitations(text)
	text = rewriteSingleCitations(text)
	text = convertInlineTables(text)
	text = convertLists(text, bulletKind)
	text = convertLists(text, numberedKind)
	text = collapseBlankLines(text)
	return text, nil
}

// collapseBlankLines normalizes runs of three or more consecutive newlines
// down to a single blank line (R6.3).
func collapseBlankLines(text string) string {
	return blankRunRe.ReplaceAllString(text, "\n\n")
}
