// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts the constrained Markdown dialect produced by the
// drafting stage into LaTeX body text. The conversion is a fixed pipeline
// of order-dependent rewrite passes over the whole document; see Transpile
// for the pass order.
// Implements: prd008-latex-rendering (R1-R6);
//
//	docs/ARCHITECTURE § Rendering.
package render

import "strings"

// latexEscaper rewrites LaTeX special characters to their safe forms in a
// single pass, so an inserted backslash is never itself re-escaped.
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// emittedCommands are the command names the earlier passes emit. Their
// presence marks a span as already-converted LaTeX.
var emittedCommands = []string{`\textbf`, `\textit`, `\cite`, `\ref`}

// Escape replaces LaTeX special characters in plain text with their safe
// forms. Text that already contains an emitted LaTeX command is returned
// unchanged: escaping a span twice corrupts the output far worse than
// leaving a stray special character in it, so the guard errs on the side
// of not touching anything that looks converted. The check is a substring
// heuristic, not a structural one (R1.3).
func Escape(text string) string {
	if strings.ContainsRune(text, '\\') {
		for _, cmd := range emittedCommands {
			if strings.Contains(text, cmd) {
				return text
			}
		}
	}
	return latexEscaper.Replace(text)
}
