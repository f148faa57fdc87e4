package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/vault/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair issues",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Diagnose vault configuration and link issues.

Checks:
- git is installed
- .env is present
- Vault root is writable
- Source roots exist and are directories
- Every discovered repository has a link pointing at it`,
		Example: `  vault doctor          # Check for issues
  vault doctor --fix    # Create missing links`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doctor.Run(cmd.Context(), cfg, newVault(cmd), fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Create missing links")

	return cmd
}
