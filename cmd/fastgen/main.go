// Package main implements the fastgen project generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	// version is set at build time
	version = "0.3.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fastgen",
		Short: "fastgen - Generate FastAPI projects from an interactive wizard",
		Long: `fastgen asks a short series of questions about the project you want
(database, ORM, API flavour, CI, optional features), resolves the
dependencies between your answers, and hands the finished configuration
to the template renderer.

Every question is also available as a flag, so a fully-flagged
invocation runs without a single prompt.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				pterm.DisableColor()
			}
		},
	}

	cmd.PersistentFlags().Bool("no-input", false, "Fail instead of prompting; every option must come from flags or defaults")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newNewCmd())

	return cmd
}
