// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderStatus indicates the outcome of rendering one Markdown document.
// Per prd008-latex-rendering R6.4.
type RenderStatus string

const (
	RenderNone   RenderStatus = "none"
	RenderDone   RenderStatus = "rendered"
	RenderFailed RenderStatus = "failed"
)

// RenderedPaper holds the outputs of one render run. Both fields are opaque
// UTF-8 strings; the caller owns writing them to disk.
type RenderedPaper struct {
	// LaTeX is the rendered document: either a full compilable article or,
	// in body-only mode, body-level LaTeX without a preamble.
	LaTeX string `json:"latex" yaml:"latex"`

	// BibTeX is the synthesized bibliography, one entry per unique citation
	// key found in the body, blank-line separated.
	BibTeX string `json:"bibtex" yaml:"bibtex"`

	// CitationKeys lists the unique, sorted citation keys recovered from the
	// rendered body.
	CitationKeys []string `json:"citation_keys" yaml:"citation_keys"`
}

// BibliographyEntry is one synthesized bibliographic record.
// Per prd008-latex-rendering R7.1-R7.3. Entries are created once per unique
// citation key, in sorted-key order, and never mutated afterwards.
type BibliographyEntry struct {
	// Key is the normalized citation key (e.g. "smith2020a").
	Key string `json:"key" yaml:"key"`

	// Author is the author token recovered from the key (e.g. "Smith").
	Author string `json:"author" yaml:"author"`

	// Title is the synthesized or reference-supplied title.
	Title string `json:"title" yaml:"title"`

	// Year is the 4-digit year substring of the key.
	Year string `json:"year" yaml:"year"`

	// Note is a fixed placeholder note; empty for reference-backed entries.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}
