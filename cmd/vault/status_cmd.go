package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/vault/internal/output"
	"github.com/raphi011/vault/internal/vault"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status [filter]",
		Short:   "Show which repositories are linked",
		Aliases: []string{"st"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show every discovered repository, its branch and whether its link exists.

An optional filter fuzzily matches the repository's relative path.
Nothing is pulled, cloned or linked.`,
		Example: `  vault status           # All repositories
  vault status tools     # Only repositories matching "tools"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var filter string
			if len(args) == 1 {
				filter = args[0]
			}

			report, err := newVault(cmd).Status(ctx, filter)
			if err != nil {
				return err
			}

			vault.RenderStatus(output.FromContext(ctx).Writer(), report)
			return nil
		},
	}

	return cmd
}
