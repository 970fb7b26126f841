// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline turns Markdown draft files into rendered .tex and .bib
// files on disk. It owns all I/O around the pure render and bibliography
// packages and reports per-file status the way the conversion stage does.
// Implements: prd008-latex-rendering (R6);
//
//	docs/ARCHITECTURE § Rendering.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-render/internal/bibliography"
	"github.com/pdiddy/paper-render/internal/document"
	"github.com/pdiddy/paper-render/internal/render"
	"github.com/pdiddy/paper-render/pkg/types"
)

// BatchResult holds the outcome of a batch render run.
type BatchResult struct {
	Rendered int
	Skipped  int
	Failed   int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed rendering.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Render transpiles one Markdown document in memory and synthesizes its
// bibliography. It is the I/O-free core used by both RenderPaper and the
// bib command.
func Render(markdown string, cfg types.RenderConfig, refs *types.ReferencesFile) (types.RenderedPaper, error) {
	body, err := render.Transpile(markdown)
	if err != nil {
		return types.RenderedPaper{}, err
	}

	keys := render.ExtractCitationKeys(body)
	bibtex := bibliography.SynthesizeWithReferences(keys, refs)

	latex := body
	if !cfg.BodyOnly {
		latex, err = document.Wrap(body, cfg)
		if err != nil {
			return types.RenderedPaper{}, err
		}
	}

	return types.RenderedPaper{
		LaTeX:        latex,
		BibTeX:       bibtex,
		CitationKeys: keys,
	}, nil
}

// RenderPaper renders a single Markdown file, writing <name>.tex and
// <name>.bib into the output directory. If the .tex output already exists
// and Force is unset, it skips the document. Rendering is deterministic, so
// a hard failure is never retried; the caller logs and moves on.
func RenderPaper(mdPath string, cfg types.RenderConfig, refs *types.ReferencesFile, w io.Writer) types.RenderStatus {
	base := strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath))
	texPath := filepath.Join(cfg.OutputDir, base+".tex")
	bibPath := filepath.Join(cfg.OutputDir, base+".bib")

	// The .tex must name the .bib written next to it.
	cfg.BibName = base

	if !cfg.Force {
		if _, err := os.Stat(texPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			return types.RenderNone
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	raw, err := os.ReadFile(mdPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	paper, err := Render(string(raw), cfg, refs)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	if err := os.WriteFile(texPath, []byte(paper.LaTeX), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}
	if err := os.WriteFile(bibPath, []byte(paper.BibTeX), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.RenderFailed
	}

	fmt.Fprintf(w, "rendered: %s (%d citations)\n", base, len(paper.CitationKeys))
	return types.RenderDone
}

// RenderBatch processes a list of Markdown files, printing per-file status
// to w and returning a summary.
func RenderBatch(mdPaths []string, cfg types.RenderConfig, refs *types.ReferencesFile, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range mdPaths {
		switch RenderPaper(p, cfg, refs, w) {
		case types.RenderDone:
			result.Rendered++
		case types.RenderNone:
			result.Skipped++
		case types.RenderFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d rendered, %d skipped, %d failed (total: %d)\n",
		result.Rendered, result.Skipped, result.Failed, result.Total())
	return result
}
