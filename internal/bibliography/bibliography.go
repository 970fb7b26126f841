// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibliography synthesizes BibTeX records for the citation keys
// recovered from a rendered LaTeX body.
// Implements: prd008-latex-rendering (R7);
//
//	docs/ARCHITECTURE § Rendering.
package bibliography

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-render/internal/render"
	"github.com/pdiddy/paper-render/pkg/types"
)

// placeholderNote marks synthesized entries that need a real reference.
const placeholderNote = "Placeholder citation - replace with actual reference"

// Synthesize produces placeholder BibTeX entries for a set of citation
// keys, one @misc record per key, in sorted-key order, blank-line
// separated. Keys that fail the author+year re-parse are silently skipped:
// their \cite commands stay in the body as dangling references, which is a
// surfaced limitation rather than something to paper over (R7.2).
func Synthesize(keys []string) string {
	return SynthesizeWithReferences(keys, nil)
}

// SynthesizeWithReferences is Synthesize with an optional references file.
// A key matching a reference entry gets a full @article record built from
// the real metadata; all other keys fall back to the placeholder record
// (R7.4). Ordering and separation are unchanged.
func SynthesizeWithReferences(keys []string, refs *types.ReferencesFile) string {
	sorted := append([]string{}, keys...)
	sort.Strings(sorted)

	known := indexReferences(refs)

	var entries []string
	for _, key := range sorted {
		if ref, ok := known[key]; ok {
			entries = append(entries, formatReference(key, ref))
			continue
		}
		author, year, ok := render.SplitCitationKey(key)
		if !ok {
			continue
		}
		entries = append(entries, formatPlaceholder(key, author, year))
	}

	return strings.Join(entries, "\n\n")
}

// Entries returns the synthesized records as structured values instead of
// serialized BibTeX, for callers that report on the bibliography.
func Entries(keys []string) []types.BibliographyEntry {
	sorted := append([]string{}, keys...)
	sort.Strings(sorted)

	var out []types.BibliographyEntry
	for _, key := range sorted {
		author, year, ok := render.SplitCitationKey(key)
		if !ok {
			continue
		}
		out = append(out, types.BibliographyEntry{
			Key:    key,
			Author: capitalize(author),
			Title:  "Placeholder Title for " + key,
			Year:   year[:4],
			Note:   placeholderNote,
		})
	}
	return out
}

// LoadReferences reads a references.yaml file.
func LoadReferences(path string) (*types.ReferencesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading references: %w", err)
	}
	var refs types.ReferencesFile
	if err := yaml.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("parsing references: %w", err)
	}
	return &refs, nil
}

// indexReferences maps normalized citation keys to their reference entries.
// Reference files carry surface-form keys like "Vaswani2017"; they are
// normalized the same way the resolver normalizes inline tags so lookup by
// recovered key works.
func indexReferences(refs *types.ReferencesFile) map[string]types.ReferenceEntry {
	if refs == nil {
		return nil
	}
	known := make(map[string]types.ReferenceEntry, len(refs.Papers))
	for _, r := range refs.Papers {
		key := strings.ReplaceAll(strings.ToLower(r.CitationKey), " ", "")
		known[key] = r
	}
	return known
}

// formatPlaceholder renders the fixed placeholder record for one key. The
// author token from the key is lowercase, so it is capitalized for display.
func formatPlaceholder(key, author, year string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@misc{%s,\n", key)
	fmt.Fprintf(&b, "  author = {%s},\n", capitalize(author))
	fmt.Fprintf(&b, "  title = {Placeholder Title for %s},\n", key)
	fmt.Fprintf(&b, "  year = {%s},\n", year[:4])
	fmt.Fprintf(&b, "  note = {%s}\n", placeholderNote)
	b.WriteString("}")
	return b.String()
}

// formatReference renders a full record from a references.yaml entry.
func formatReference(key string, r types.ReferenceEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", key)
	fmt.Fprintf(&b, "  title = {%s},\n", r.Title)
	if len(r.Authors) > 0 {
		fmt.Fprintf(&b, "  author = {%s},\n", strings.Join(r.Authors, " and "))
	}
	if r.Venue != "" {
		fmt.Fprintf(&b, "  journal = {%s},\n", r.Venue)
	}
	fmt.Fprintf(&b, "  year = {%d}\n", r.Year)
	b.WriteString("}")
	return b.String()
}

// capitalize uppercases the first byte of an ASCII author token.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
