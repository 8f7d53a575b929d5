/*
Command running-man drives the strand simulation and the zoetrope layout
from the terminal.
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
)

const appName = "Running-man"

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "running-man",
	Short: "Strand physics on a running rig, and zoetrope layouts",
	Long: `running-man simulates Verlet hair strands attached to a procedural
running skeleton, and lays out zoetrope frames for export.

Available subcommands:
  simulate  - Run the strand simulation headless
  zoetrope  - Export or inspect zoetrope frame layouts
  presets   - List the built-in strand presets`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		core.SetLogLevel(core.ParseLogLevel(logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(zoetropeCmd)
	rootCmd.AddCommand(presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
