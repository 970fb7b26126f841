// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-render/internal/bibliography"
	"github.com/pdiddy/paper-render/internal/render"
	"github.com/pdiddy/paper-render/pkg/types"
)

var bibCmd = &cobra.Command{
	Use:   "bib <file.md|file.tex>",
	Short: "Print the synthesized bibliography for a document",
	Long: `Bib extracts the unique citation keys from a document and prints the
synthesized BibTeX to stdout. Markdown input is transpiled first; .tex
input is scanned for \cite commands as-is. With --list, a key/author/year
table is printed instead of BibTeX.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		text := string(raw)
		if strings.HasSuffix(args[0], ".md") {
			text, err = render.Transpile(text)
			if err != nil {
				return err
			}
		}

		keys := render.ExtractCitationKeys(text)

		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, e := range bibliography.Entries(keys) {
				fmt.Printf("%s\t%s\t%s\n", e.Key, e.Author, e.Year)
			}
			return nil
		}

		var refs *types.ReferencesFile
		if path, _ := cmd.Flags().GetString("references"); path != "" {
			refs, err = bibliography.LoadReferences(path)
			if err != nil {
				return err
			}
		}

		fmt.Println(bibliography.SynthesizeWithReferences(keys, refs))
		return nil
	},
}

func init() {
	bibCmd.Flags().String("references", "", "path to references.yaml for real bibliography entries")
	bibCmd.Flags().Bool("list", false, "print a key/author/year table instead of BibTeX")

	rootCmd.AddCommand(bibCmd)
}
