package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/quake-impact-service/internal/roster"
)

func rosterCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Print a roster as normalized YAML",
		Long:  "Prints the built-in reference roster, or validates and normalizes --roster, as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildings, err := roster.Load(path)
			if err != nil {
				return err
			}
			return roster.Encode(cmd.OutOrStdout(), buildings)
		},
	}

	cmd.Flags().StringVarP(&path, "roster", "r", "", "YAML or JSON roster to normalize")
	return cmd
}
