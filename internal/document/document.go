// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document wraps transpiled LaTeX body text in a complete article
// document: preamble, title page, abstract, and bibliography hookup.
// Implements: prd008-latex-rendering (R5);
//
//	docs/ARCHITECTURE § Rendering.
package document

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/paper-render/internal/render"
	"github.com/pdiddy/paper-render/pkg/types"
)

// babelLanguages maps content language codes to babel package options.
var babelLanguages = map[types.PaperLanguage]string{
	types.LanguageEnglish: "english",
	types.LanguageGerman:  "ngerman",
	types.LanguageSpanish: "spanish",
	types.LanguageFrench:  "french",
}

// bibStyles maps citation styles to natbib bibliography styles.
var bibStyles = map[types.CitationStyle]string{
	types.StyleAPA:     "apalike",
	types.StyleIEEE:    "ieeetr",
	types.StyleChicago: "plainnat",
	types.StyleMLA:     "apalike",
}

// paperTemplate is the article document skeleton. It uses << >> delimiters
// so the template machinery never collides with LaTeX braces.
const paperTemplate = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[<<.Language>>]{babel}
\usepackage[margin=2.5cm]{geometry}
\usepackage{booktabs}
\usepackage{graphicx}
\usepackage{pgfplots}
\pgfplotsset{compat=1.17}
\usepackage{natbib}

\title{<<.Title>>}
\author{<<.Author>>}
\date{\today}

\begin{document}

\maketitle

<<if .Abstract>>\begin{abstract}
<<.Abstract>>
\end{abstract}

<<end>><<.Body>>

\bibliographystyle{<<.BibStyle>>}
\bibliography{<<.BibName>>}

\end{document}
`

// templateData carries the substitution values for paperTemplate. Title and
// Abstract are escaped before they get here; Body is already LaTeX.
type templateData struct {
	Title    string
	Author   string
	Abstract string
	Language string
	BibStyle string
	BibName  string
	Body     string
}

var compiled = template.Must(
	template.New("paper").Delims("<<", ">>").Parse(paperTemplate),
)

// Wrap renders the full LaTeX document around a transpiled body. Title and
// abstract are plain text and get escaped; the body is inserted verbatim.
// Unknown language codes fall back to english, unknown citation styles to
// apalike (R5.1, R5.2). An empty BibName falls back to "references".
func Wrap(body string, cfg types.RenderConfig) (string, error) {
	lang, ok := babelLanguages[cfg.Language]
	if !ok {
		lang = "english"
	}
	style, ok := bibStyles[cfg.CitationStyle]
	if !ok {
		style = "apalike"
	}

	author := cfg.Author
	if author == "" {
		author = "Research Agent"
	}

	bibName := cfg.BibName
	if bibName == "" {
		bibName = "references"
	}

	data := templateData{
		Title:    render.Escape(cfg.Title),
		Author:   render.Escape(author),
		Abstract: render.Escape(cfg.Abstract),
		Language: lang,
		BibStyle: style,
		BibName:  bibName,
		Body:     body,
	}

	var b strings.Builder
	if err := compiled.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering document template: %w", err)
	}
	return b.String(), nil
}
