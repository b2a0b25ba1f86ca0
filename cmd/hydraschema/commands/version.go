package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/hydraschema"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			Writef(cmd.OutOrStdout(), "hydraschema %s\n", hydraschema.Version())
			Writef(cmd.OutOrStdout(), "%s\n", hydraschema.BuildInfo())
		},
	}
}
