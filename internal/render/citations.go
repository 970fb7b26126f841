// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"sort"
	"strings"
)

// Citation tag patterns (R3.1). A tag is an author token followed by a
// 4-digit year and an optional lowercase disambiguation letter, in square
// brackets: [Smith2020], [Smith2020a]. Multi-key tags join several of those
// with semicolons: [Smith2020; Jones2021].
var (
	// multiCiteRe matches multi-key citation tags. It requires every
	// segment to independently match the author+year shape, so bracketed
	// prose that merely contains a semicolon is never mis-split.
	multiCiteRe = regexp.MustCompile(`\[([A-Za-z]+\d{4}[a-z]?(?:\s*;\s*[A-Za-z]+\d{4}[a-z]?)+)\]`)

	// singleCiteRe matches single citation tags.
	singleCiteRe = regexp.MustCompile(`\[([A-Za-z]+\d{4}[a-z]?)\]`)

	// citeCommandRe matches emitted \cite commands for key recovery.
	citeCommandRe = regexp.MustCompile(`\\cite\{([^{}]+)\}`)

	// citationKeyRe splits a normalized key into author token and year.
	citationKeyRe = regexp.MustCompile(`^([a-z]+)(\d{4}[a-z]?)$`)
)

// normalizeCitationKey lowercases a citation tag body and strips internal
// spaces. The same surface form always yields the same key (R3.2).
func normalizeCitationKey(tag string) string {
	return strings.ReplaceAll(strings.ToLower(tag), " ", "")
}

// rewriteMultiCitations converts multi-key tags to a single \cite command
// with a comma-joined key list. This pass must run before the single-key
// pass: matching singles first would split a multi-key tag into fragments
// and corrupt the output (R3.3).
func rewriteMultiCitations(text string) string {
	return multiCiteRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[1 : len(m)-1]
		parts := strings.Split(inner, ";")
		keys := make([]string, 0, len(parts))
		for _, p := range parts {
			keys = append(keys, normalizeCitationKey(strings.TrimSpace(p)))
		}
		return `\cite{` + strings.Join(keys, ",") + `}`
	})
}

// rewriteSingleCitations converts the remaining single-key tags to \cite
// commands.
func rewriteSingleCitations(text string) string {
	return singleCiteRe.ReplaceAllStringFunc(text, func(m string) string {
		return `\cite{` + normalizeCitationKey(m[1:len(m)-1]) + `}`
	})
}

// ExtractCitationKeys re-scans finished LaTeX for \cite arguments and
// returns the sorted set of unique citation keys. Comma-joined multi-key
// arguments are split into individual keys. This is an independent,
// idempotent pass over the final text, not state carried over from the
// rewrite passes (R3.4).
func ExtractCitationKeys(text string) []string {
	seen := make(map[string]bool)
	for _, m := range citeCommandRe.FindAllStringSubmatch(text, -1) {
		for _, part := range strings.Split(m[1], ",") {
			key := strings.TrimSpace(part)
			if key != "" {
				seen[key] = true
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SplitCitationKey parses a normalized citation key back into its author
// token and year ("smith2020a" → "smith", "2020a"). It reports false for
// keys that do not match the author+year shape; such keys are skipped by
// the bibliography synthesizer and stay in the body as dangling \cite
// references (R7.2).
func SplitCitationKey(key string) (author, year string, ok bool) {
	m := citationKeyRe.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
