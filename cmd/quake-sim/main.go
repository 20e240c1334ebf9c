// Command quake-sim runs earthquake scenarios against a building roster from
// the command line.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "quake-sim",
		Short:        "Estimate building damage and recovery for an earthquake scenario",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(assessCmd())
	rootCmd.AddCommand(wavefrontCmd())
	rootCmd.AddCommand(rosterCmd())
	return rootCmd
}
