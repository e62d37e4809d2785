// Package cli provides the command-line interface for the oneof generator.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "oneofgen",
		Short: "Derive discriminated-union schemas from a declaration manifest",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
