// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-render/internal/bibliography"
	"github.com/pdiddy/paper-render/internal/pipeline"
	"github.com/pdiddy/paper-render/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <files...>",
	Short: "Render Markdown draft files to LaTeX with a synthesized bibliography",
	Long: `Render transpiles each Markdown file into LaTeX and writes <name>.tex
and <name>.bib into the output directory. Citation tags like [Smith2020]
become \cite commands; every unique citation key gets a bibliography entry,
placeholder unless a references file supplies real metadata.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := renderConfigFromFlags(cmd)

		var refs *types.ReferencesFile
		if cfg.ReferencesPath != "" {
			loaded, err := bibliography.LoadReferences(cfg.ReferencesPath)
			if err != nil {
				return err
			}
			refs = loaded
		}

		result := pipeline.RenderBatch(args, cfg, refs, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d documents failed", result.Failed, result.Total())
		}
		return nil
	},
}

// renderConfigFromFlags merges command flags over viper config values.
func renderConfigFromFlags(cmd *cobra.Command) types.RenderConfig {
	stringOpt := func(flag, key, fallback string) string {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			return v
		}
		if viper.IsSet(key) {
			return viper.GetString(key)
		}
		return fallback
	}

	force, _ := cmd.Flags().GetBool("force")
	bodyOnly, _ := cmd.Flags().GetBool("body-only")

	return types.RenderConfig{
		Title:          stringOpt("title", "render.title", "Untitled Paper"),
		Author:         stringOpt("author", "render.author", ""),
		Abstract:       stringOpt("abstract", "render.abstract", ""),
		Language:       types.PaperLanguage(stringOpt("language", "render.language", "en")),
		CitationStyle:  types.CitationStyle(stringOpt("citation-style", "render.citation_style", "apa")),
		OutputDir:      stringOpt("output-dir", "render.output_dir", "output/latex"),
		ReferencesPath: stringOpt("references", "render.references_path", ""),
		BodyOnly:       bodyOnly,
		Force:          force,
	}
}

func init() {
	renderCmd.Flags().String("output-dir", "output/latex", "directory for rendered .tex and .bib files")
	renderCmd.Flags().String("language", "en", "content language: en, de, es, or fr")
	renderCmd.Flags().String("citation-style", "apa", "bibliography style: apa, ieee, chicago, or mla")
	renderCmd.Flags().String("references", "", "path to references.yaml for real bibliography entries")
	renderCmd.Flags().String("title", "", "paper title for the rendered document")
	renderCmd.Flags().String("author", "", "author byline for the rendered document")
	renderCmd.Flags().String("abstract", "", "paper abstract for the rendered document")
	renderCmd.Flags().Bool("body-only", false, "emit body-level LaTeX without the document preamble")
	renderCmd.Flags().Bool("force", false, "re-render documents whose outputs already exist")

	rootCmd.AddCommand(renderCmd)
}
