// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// Header patterns, deepest first so #### is never consumed by the # rule.
var (
	h4Re = regexp.MustCompile(`(?m)^#### (.+)$`)
	h3Re = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Re = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Re = regexp.MustCompile(`(?m)^# (.+)$`)

	// boldRe must be applied before italicRe: a ** run matched by the
	// italic pattern first would parse as two nested single-asterisk spans.
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)

	// numberedItemRe matches the marker of a numbered list item.
	numberedItemRe = regexp.MustCompile(`^\d+\. `)
)

// convertHeaders maps Markdown headers to LaTeX sectioning commands: a
// single # becomes an unnumbered top-level heading, deeper levels become
// numbered section/subsection/subsubsection (R5.1).
func convertHeaders(text string) string {
	text = h4Re.ReplaceAllString(text, `\subsubsection{$1}`)
	text = h3Re.ReplaceAllString(text, `\subsection{$1}`)
	text = h2Re.ReplaceAllString(text, `\section{$1}`)
	text = h1Re.ReplaceAllString(text, `\section*{$1}`)
	return text
}

// convertEmphasis rewrites **bold** then *italic* spans (R5.2).
func convertEmphasis(text string) string {
	text = boldRe.ReplaceAllString(text, `\textbf{$1}`)
	text = italicRe.ReplaceAllString(text, `\textit{$1}`)
	return text
}

// listState is the line scanner's position relative to a list run.
type listState int

const (
	outsideList listState = iota
	insideList
)

// listKind describes one list flavor for the line scanner.
type listKind struct {
	env string
	// item returns the item text of a matching line and whether it matched.
	item func(line string) (string, bool)
}

var (
	bulletKind = listKind{
		env: "itemize",
		item: func(line string) (string, bool) {
			if strings.HasPrefix(line, "- ") {
				return line[2:], true
			}
			return "", false
		},
	}

	numberedKind = listKind{
		env: "enumerate",
		item: func(line string) (string, bool) {
			if m := numberedItemRe.FindString(line); m != "" {
				return line[len(m):], true
			}
			return "", false
		},
	}
)

// listTransition consumes one line and returns the lines to emit plus the
// next scanner state. Item text is escaped here, after the emphasis and
// citation passes have run; the Escape guard keeps their output intact.
func listTransition(state listState, line string, kind listKind) ([]string, listState) {
	item, ok := kind.item(strings.TrimSpace(line))
	switch {
	case ok && state == outsideList:
		return []string{`\begin{` + kind.env + `}`, `  \item ` + Escape(item)}, insideList
	case ok:
		return []string{`  \item ` + Escape(item)}, insideList
	case state == insideList:
		return []string{`\end{` + kind.env + `}`, line}, outsideList
	default:
		return []string{line}, outsideList
	}
}

// convertLists wraps maximal contiguous runs of one list kind in a balanced
// LaTeX environment. A run ends at the first non-matching line or at end of
// input; the closing \end is emitted even when the input stops mid-list
// (R5.3, R5.4). Bullet and numbered runs are handled by two independent
// full passes, so interleaved mixed lists are out of scope by design.
func convertLists(text string, kind listKind) string {
	state := outsideList
	var out []string
	for _, line := range strings.Split(text, "\n") {
		var emitted []string
		emitted, state = listTransition(state, line, kind)
		out = append(out, emitted...)
	}
	if state == insideList {
		out = append(out, `\end{`+kind.env+`}`)
	}
	return strings.Join(out, "\n")
}
