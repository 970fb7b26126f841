// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReferenceEntry records a real cited paper in references.yaml. When a
// citation key in a rendered body matches an entry here, the bibliography
// synthesizer emits a full record instead of a placeholder.
// Per prd008-latex-rendering R7.4.
type ReferenceEntry struct {
	// CitationKey is the inline citation label (e.g. "Vaswani2017").
	CitationKey string `json:"citation_key" yaml:"citation_key"`

	// Title is the cited paper's title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author surnames.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Venue is the journal or conference (optional).
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`
}

// ReferencesFile holds all cited papers from references.yaml.
type ReferencesFile struct {
	// Papers lists every cited paper.
	Papers []ReferenceEntry `json:"papers" yaml:"papers"`
}
