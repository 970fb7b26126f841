// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// Pipe table patterns (R4.1). A table start is a pipe-delimited row followed
// by a separator row whose cells contain only dashes, colons, and spaces.
var (
	// tableRowRe matches a pipe-delimited table row.
	tableRowRe = regexp.MustCompile(`^\s*\|.*\|\s*$`)

	// tableSepRe matches a header/data separator row like |---|:--:|.
	tableSepRe = regexp.MustCompile(`^\s*\|[\s\-:|]+\|\s*$`)

	// nonAlnumRe strips label slugs down to lowercase alphanumerics.
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// labelSlugMax caps label slug length.
const labelSlugMax = 20

// labelSlug derives a \label suffix from a caption: lowercased,
// non-alphanumerics stripped, capped at labelSlugMax characters.
func labelSlug(caption string) string {
	s := nonAlnumRe.ReplaceAllString(strings.ToLower(caption), "")
	if len(s) > labelSlugMax {
		s = s[:labelSlugMax]
	}
	return s
}

// splitTableRow splits a pipe-delimited row into trimmed cell strings.
func splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// convertTableBlock renders a header row plus data rows as a booktabs table
// environment. The column spec is "l" per header cell. Data rows longer than
// the header are truncated to the header's column count; shorter rows render
// only the cells present (R4.3). Blocks with fewer than two rows produce no
// output: a malformed tabular is worse than a dropped one (R4.4).
func convertTableBlock(rows []string, caption string) string {
	if len(rows) < 2 {
		return ""
	}

	header := splitTableRow(rows[0])
	cols := len(header)

	var b strings.Builder
	b.WriteString("\\begin{table}[htbp]\n")
	b.WriteString("\\centering\n")
	b.WriteString("\\caption{" + Escape(caption) + "}\n")
	b.WriteString("\\label{tab:" + labelSlug(caption) + "}\n")
	b.WriteString("\\begin{tabular}{" + strings.Repeat("l", cols) + "}\n")
	b.WriteString("\\toprule\n")
	b.WriteString(joinCells(header, cols) + " \\\\\n")
	b.WriteString("\\midrule\n")
	for _, row := range rows[1:] {
		b.WriteString(joinCells(splitTableRow(row), cols) + " \\\\\n")
	}
	b.WriteString("\\bottomrule\n")
	b.WriteString("\\end{tabular}\n")
	b.WriteString("\\end{table}")
	return b.String()
}

// joinCells escapes and joins up to cols cells with the LaTeX column
// separator.
func joinCells(cells []string, cols int) string {
	if len(cells) > cols {
		cells = cells[:cols]
	}
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = Escape(c)
	}
	return strings.Join(escaped, " & ")
}

// convertInlineTables finds pipe tables anywhere in the body (header row,
// separator row, one or more data rows) and rewrites each as a table
// environment with the default caption (R4.1, R4.2).
func convertInlineTables(text string) string {
	lines := strings.Split(text, "\n")
	var out []string

	for i := 0; i < len(lines); {
		if !isTableStart(lines, i) {
			out = append(out, lines[i])
			i++
			continue
		}

		block := []string{lines[i]}
		j := i + 2 // skip the separator row
		for j < len(lines) && tableRowRe.MatchString(lines[j]) {
			if !tableSepRe.MatchString(lines[j]) {
				block = append(block, lines[j])
			}
			j++
		}

		if latex := convertTableBlock(block, "Table"); latex != "" {
			out = append(out, latex)
		}
		i = j
	}

	return strings.Join(out, "\n")
}

// isTableStart reports whether a pipe table begins at line i: a row, then a
// separator, then at least one data row.
func isTableStart(lines []string, i int) bool {
	return i+2 < len(lines) &&
		tableRowRe.MatchString(lines[i]) &&
		tableSepRe.MatchString(lines[i+1]) &&
		tableRowRe.MatchString(lines[i+2]) &&
		!tableSepRe.MatchString(lines[i])
}

// convertWindowTable finds the first run of pipe rows inside a placeholder
// lookahead window and converts it to a table environment. Unlike the inline
// entry point, no separator row is required: any two or more consecutive
// pipe rows qualify (R2.4). It returns the table LaTeX and the window with
// the consumed rows removed so they do not render twice; the LaTeX is empty
// when the window holds no table.
func convertWindowTable(window, caption string) (latex, remainder string) {
	lines := strings.Split(window, "\n")

	start := -1
	end := -1
	for i := 0; i < len(lines); {
		if !tableRowRe.MatchString(lines[i]) {
			i++
			continue
		}
		j := i
		for j < len(lines) && tableRowRe.MatchString(lines[j]) {
			j++
		}
		if j-i >= 2 {
			start, end = i, j
			break
		}
		i = j
	}
	if start < 0 {
		return "", window
	}

	var block []string
	for _, line := range lines[start:end] {
		if !tableSepRe.MatchString(line) {
			block = append(block, line)
		}
	}

	latex = convertTableBlock(block, caption)
	if latex == "" {
		// Separator-only run: nothing to emit, leave the window untouched.
		return "", window
	}

	kept := append([]string{}, lines[:start]...)
	kept = append(kept, lines[end:]...)
	return latex, strings.Join(kept, "\n")
}
