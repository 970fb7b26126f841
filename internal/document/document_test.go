// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-render/pkg/types"
)

func TestWrap(t *testing.T) {
	cfg := types.RenderConfig{
		Title:         "A Study",
		Abstract:      "We study things.",
		Language:      types.LanguageEnglish,
		CitationStyle: types.StyleAPA,
	}

	got, err := Wrap(`\section{Intro}`, cfg)
	require.NoError(t, err)

	assert.Contains(t, got, `\documentclass[11pt,a4paper]{article}`)
	assert.Contains(t, got, `\usepackage[english]{babel}`)
	assert.Contains(t, got, `\title{A Study}`)
	assert.Contains(t, got, `\author{Research Agent}`)
	assert.Contains(t, got, "\\begin{abstract}\nWe study things.\n\\end{abstract}")
	assert.Contains(t, got, `\section{Intro}`)
	assert.Contains(t, got, `\bibliographystyle{apalike}`)
	assert.Contains(t, got, `\bibliography{references}`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(got), `\end{document}`))
}

func TestWrapLanguageMapping(t *testing.T) {
	tests := []struct {
		lang types.PaperLanguage
		want string
	}{
		{types.LanguageEnglish, "english"},
		{types.LanguageGerman, "ngerman"},
		{types.LanguageSpanish, "spanish"},
		{types.LanguageFrench, "french"},
		{"xx", "english"}, // unknown code falls back
	}

	for _, tt := range tests {
		got, err := Wrap("body", types.RenderConfig{Language: tt.lang})
		require.NoError(t, err)
		assert.Contains(t, got, `\usepackage[`+tt.want+`]{babel}`, "language %q", tt.lang)
	}
}

func TestWrapCitationStyleMapping(t *testing.T) {
	tests := []struct {
		style types.CitationStyle
		want  string
	}{
		{types.StyleAPA, "apalike"},
		{types.StyleIEEE, "ieeetr"},
		{types.StyleChicago, "plainnat"},
		{types.StyleMLA, "apalike"},
		{"", "apalike"},
	}

	for _, tt := range tests {
		got, err := Wrap("body", types.RenderConfig{CitationStyle: tt.style})
		require.NoError(t, err)
		assert.Contains(t, got, `\bibliographystyle{`+tt.want+`}`, "style %q", tt.style)
	}
}

func TestWrapEscapesTitleAndAbstract(t *testing.T) {
	cfg := types.RenderConfig{
		Title:    "Cost & Effect",
		Abstract: "100% of cases_studied",
	}

	got, err := Wrap("body", cfg)
	require.NoError(t, err)

	assert.Contains(t, got, `\title{Cost \& Effect}`)
	assert.Contains(t, got, `100\% of cases\_studied`)
}

func TestWrapBodyInsertedVerbatim(t *testing.T) {
	// The body is already LaTeX; wrapping must not escape or alter it.
	body := `\section{X}` + "\n" + `\cite{smith2020} costs \& braces {ok}`

	got, err := Wrap(body, types.RenderConfig{})
	require.NoError(t, err)
	assert.Contains(t, got, body)
}

func TestWrapBibliographyName(t *testing.T) {
	got, err := Wrap("body", types.RenderConfig{BibName: "draft"})
	require.NoError(t, err)
	assert.Contains(t, got, `\bibliography{draft}`)
	assert.NotContains(t, got, `\bibliography{references}`)
}

func TestWrapOmitsEmptyAbstract(t *testing.T) {
	got, err := Wrap("body", types.RenderConfig{Title: "T"})
	require.NoError(t, err)
	assert.NotContains(t, got, `\begin{abstract}`)
}

func TestWrapCustomAuthor(t *testing.T) {
	got, err := Wrap("body", types.RenderConfig{Author: "J. Doe"})
	require.NoError(t, err)
	assert.Contains(t, got, `\author{J. Doe}`)
}
