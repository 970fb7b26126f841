// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperLanguage is the two-letter language code of the paper content.
// Per prd008-latex-rendering R5.1.
type PaperLanguage string

const (
	LanguageEnglish PaperLanguage = "en"
	LanguageGerman  PaperLanguage = "de"
	LanguageSpanish PaperLanguage = "es"
	LanguageFrench  PaperLanguage = "fr"
)

// CitationStyle selects the bibliography style of the rendered document.
// Per prd008-latex-rendering R5.2.
type CitationStyle string

const (
	StyleAPA     CitationStyle = "apa"
	StyleIEEE    CitationStyle = "ieee"
	StyleChicago CitationStyle = "chicago"
	StyleMLA     CitationStyle = "mla"
)

// RenderConfig holds settings for the render stage.
// Per prd008-latex-rendering R5.1-R5.6.
type RenderConfig struct {
	// Title is the paper title, escaped before template substitution.
	Title string `json:"title" yaml:"title"`

	// Author is the byline used on the title page (default "Research Agent").
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Abstract is the paper abstract, escaped before template substitution.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Language is the content language code: en, de, es, or fr (default en).
	// Only the surrounding document template consumes it; the body
	// transpilation itself is language-agnostic.
	Language PaperLanguage `json:"language" yaml:"language"`

	// CitationStyle selects the bibliography style: apa, ieee, chicago, or mla
	// (default apa).
	CitationStyle CitationStyle `json:"citation_style" yaml:"citation_style"`

	// TargetPages is the page budget requested from the drafting stage. It is
	// carried through for the workflow's bookkeeping and does not influence
	// transpilation.
	TargetPages int `json:"target_pages,omitempty" yaml:"target_pages,omitempty"`

	// OutputDir is the directory for rendered .tex and .bib files
	// (default "output/latex").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// BibName is the bibliography file stem named by the document's
	// \bibliography command (default "references"). The render stage sets it
	// to the output base name so the .tex resolves the .bib written next to
	// it.
	BibName string `json:"bib_name,omitempty" yaml:"bib_name,omitempty"`

	// ReferencesPath is an optional references.yaml file used to replace
	// placeholder bibliography records with real ones (R7.4).
	ReferencesPath string `json:"references_path,omitempty" yaml:"references_path,omitempty"`

	// BodyOnly emits only the transpiled LaTeX body, skipping the document
	// template wrapping (R6.2).
	BodyOnly bool `json:"body_only,omitempty" yaml:"body_only,omitempty"`

	// Force re-renders documents whose outputs already exist.
	Force bool `json:"force,omitempty" yaml:"force,omitempty"`
}
