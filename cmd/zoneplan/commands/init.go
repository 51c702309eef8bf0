package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/zoneplan/cmd/zoneplan/handlers"
)

// Init returns the command that writes a starter values file.
func Init() *cobra.Command {
	var (
		path        string
		interactive bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter zoneplan.yaml",
		Long: `Write a starter zoneplan.yaml values file.

By default a commented template with the compiled-in defaults is
written. With --interactive a guided setup asks for region, parent
CIDR and subnet sizing.

Examples:
  # Starter template in the current directory
  zoneplan init

  # Guided setup
  zoneplan init --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), handlers.InitOptions{
				Path:        path,
				Interactive: interactive,
				Force:       force,
			})
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Target file (default: zoneplan.yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the guided setup")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
