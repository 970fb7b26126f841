// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// lookaheadWindow bounds how far past a placeholder tag the expander scans
// for metadata lines. The drafting stage emits metadata directly under the
// tag, so a few hundred characters is always enough; scanning the whole
// document would let a later placeholder's metadata bleed into an earlier
// one.
const lookaheadWindow = 600

// Placeholder tag patterns (R2.1). The marker must appear immediately after
// the opening bracket and is case-sensitive; the rest of the bracket body is
// free-form and ignored.
var (
	figureTagRe = regexp.MustCompile(`\[FIGURE[^\]]*\]`)
	tableTagRe  = regexp.MustCompile(`\[TABLE[^\]]*\]`)
	chartTagRe  = regexp.MustCompile(`\[CHART[^\]]*\]`)

	// Metadata line patterns scanned inside the lookahead window (R2.2).
	captionLineRe     = regexp.MustCompile(`(?m)^\s*Caption:\s*(.+)$`)
	descriptionLineRe = regexp.MustCompile(`(?m)^\s*Description:\s*(.+)$`)
	typeLineRe        = regexp.MustCompile(`(?m)^\s*Type:\s*(.+)$`)

	// residualMetaRe matches leftover standalone metadata lines. They were
	// consumed as placeholder metadata and must not double-render as prose.
	residualMetaRe = regexp.MustCompile(`(?m)^\s*(?:Caption|Description|Type|Data):.*$\n?`)
)

// placeholderMeta holds the metadata recovered from a lookahead window,
// with documented defaults filled in for missing keys (R2.3).
type placeholderMeta struct {
	caption     string
	description string
	chartType   string
}

// extractMeta scans a lookahead window for Caption/Description/Type lines.
func extractMeta(window, defaultCaption string) placeholderMeta {
	meta := placeholderMeta{
		caption:     defaultCaption,
		description: "Placeholder figure",
		chartType:   "line",
	}
	if m := captionLineRe.FindStringSubmatch(window); m != nil {
		meta.caption = strings.TrimSpace(m[1])
	}
	if m := descriptionLineRe.FindStringSubmatch(window); m != nil {
		meta.description = strings.TrimSpace(m[1])
	}
	if m := typeLineRe.FindStringSubmatch(window); m != nil {
		meta.chartType = strings.ToLower(strings.TrimSpace(m[1]))
	}
	return meta
}

// expandPlaceholderKind rewrites every match of re, handing build the
// bounded window that follows the match. build returns the replacement
// LaTeX and the window with any consumed lines removed.
func expandPlaceholderKind(text string, re *regexp.Regexp, build func(window string) (string, string)) string {
	var b strings.Builder
	rest := text
	for {
		loc := re.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(rest[:loc[0]])
		after := rest[loc[1]:]
		window := after[:min(lookaheadWindow, len(after))]
		replacement, remainder := build(window)
		b.WriteString(replacement)
		rest = remainder + after[len(window):]
	}
}

// expandPlaceholders rewrites all [FIGURE...], [TABLE...], and [CHART...]
// tags into figure, table, and chart environments. No image files exist at
// render time, so figures get a framed text box and charts get a pgfplots
// stub rather than an \includegraphics pointing at a fabricated path (R2.5).
func expandPlaceholders(text string) string {
	text = expandPlaceholderKind(text, figureTagRe, func(window string) (string, string) {
		meta := extractMeta(window, "Figure")
		return buildFigure(meta), window
	})
	text = expandPlaceholderKind(text, tableTagRe, func(window string) (string, string) {
		meta := extractMeta(window, "Data Summary")
		latex, remainder := convertWindowTable(window, meta.caption)
		if latex == "" {
			// No pipe table in the window: emit a framed placeholder so the
			// document still shows where the table belongs.
			return buildTablePlaceholder(meta), window
		}
		return latex, remainder
	})
	text = expandPlaceholderKind(text, chartTagRe, func(window string) (string, string) {
		meta := extractMeta(window, "Chart")
		return buildChart(meta), window
	})
	return text
}

// stripResidualMetadata removes standalone metadata lines left behind after
// placeholder expansion (R2.6).
func stripResidualMetadata(text string) string {
	return residualMetaRe.ReplaceAllString(text, "")
}

// buildFigure renders a figure environment with a framed placeholder box in
// place of image content.
func buildFigure(meta placeholderMeta) string {
	var b strings.Builder
	b.WriteString("\\begin{figure}[htbp]\n")
	b.WriteString("\\centering\n")
	b.WriteString("\\fbox{\\parbox{0.8\\textwidth}{\\centering\\vspace{1.5cm}\n")
	b.WriteString(Escape(meta.description) + "\n")
	b.WriteString("\\vspace{1.5cm}}}\n")
	b.WriteString("\\caption{" + Escape(meta.caption) + "}\n")
	b.WriteString("\\label{fig:" + labelSlug(meta.caption) + "}\n")
	b.WriteString("\\end{figure}")
	return b.String()
}

// buildTablePlaceholder renders a table environment with framed placeholder
// content for TABLE tags whose window carried no pipe table.
func buildTablePlaceholder(meta placeholderMeta) string {
	var b strings.Builder
	b.WriteString("\\begin{table}[htbp]\n")
	b.WriteString("\\centering\n")
	b.WriteString("\\caption{" + Escape(meta.caption) + "}\n")
	b.WriteString("\\label{tab:" + labelSlug(meta.caption) + "}\n")
	b.WriteString("\\fbox{\\parbox{0.8\\textwidth}{\\centering\\vspace{1cm}\n")
	b.WriteString(Escape(meta.description) + "\n")
	b.WriteString("\\vspace{1cm}}}\n")
	b.WriteString("\\end{table}")
	return b.String()
}

// chartPlots maps a chart type to its pgfplots stub plot. Unknown types
// fall back to the line stub.
var chartPlots = map[string]string{
	"line":    "\\addplot+[smooth] coordinates {(0,1) (1,2) (2,2.6) (3,3.1) (4,3.3)};",
	"bar":     "\\addplot+[ybar] coordinates {(1,3) (2,5) (3,4) (4,6)};",
	"scatter": "\\addplot+[only marks] coordinates {(0.5,1.2) (1.1,2.4) (1.8,1.9) (2.6,3.3) (3.2,2.8)};",
}

// buildChart renders a figure environment holding a pgfplots axis stub as
// content-free placeholder visual.
func buildChart(meta placeholderMeta) string {
	plot, ok := chartPlots[meta.chartType]
	if !ok {
		plot = chartPlots["line"]
	}

	var b strings.Builder
	b.WriteString("\\begin{figure}[htbp]\n")
	b.WriteString("\\centering\n")
	b.WriteString("\\begin{tikzpicture}\n")
	b.WriteString("\\begin{axis}[width=0.8\\textwidth, height=6cm]\n")
	b.WriteString(plot + "\n")
	b.WriteString("\\end{axis}\n")
	b.WriteString("\\end{tikzpicture}\n")
	b.WriteString("\\caption{" + Escape(meta.caption) + "}\n")
	b.WriteString("\\label{fig:" + labelSlug(meta.caption) + "}\n")
	b.WriteString("\\end{figure}")
	return b.String()
}
