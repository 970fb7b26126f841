// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-render CLI.
// Implements: prd008-latex-rendering (CLI surface).
// See docs/ARCHITECTURE § Rendering, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paper-render CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-render",
	Short: "Render generated Markdown papers into LaTeX",
	Long: `paper-render converts the constrained Markdown dialect emitted by the
drafting stage into LaTeX source plus a synthesized BibTeX bibliography.
It handles headers, emphasis, lists, pipe tables, citation tags, and
figure/table/chart placeholder blocks; compiling the result to PDF is the
job of an external TeX toolchain.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-render.yaml or ~/.config/paper-render/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-render")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-render"))
		}
	}

	viper.SetEnvPrefix("PAPER_RENDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
