// Package commands implements the property engine CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "property-engine",
	Short: "Property Engine - natural language search over Córdoba real estate listings",
	Long: `The Property Engine answers natural language questions in Spanish about a
CSV snapshot of Córdoba property listings: it extracts neighborhood, type,
bedroom, bathroom, surface, and budget filters from free text, runs them
against the snapshot, and reports market statistics.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
