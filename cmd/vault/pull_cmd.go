package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/vault/internal/output"
)

func newPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "pull",
		Short:       "Pull every repository and link it into the vault",
		GroupID:     GroupCore,
		Annotations: needsGit(),
		Args:        cobra.NoArgs,
		Long: `Pull the vault and every repository below the configured source roots,
then link each repository into the vault at its relative path.

A repository that fails to pull or link is reported and skipped; the
command still succeeds. Existing entries at a link path are never touched.`,
		Example: `  vault pull                 # Pull and link everything
  vault pull -C ~/notes      # Use a different vault root
  vault pull -v              # Show git commands as they run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			s, err := newVault(cmd).Pull(ctx)
			if err != nil {
				return err
			}

			out.Println()
			out.Printf("%d repositories processed, %d links created, %d already present",
				s.Processed, s.Created, s.Present)
			if s.SyncFailed > 0 {
				out.Printf(", %d pulls failed", s.SyncFailed)
			}
			if s.LinkFailed > 0 {
				out.Printf(", %d links failed", s.LinkFailed)
			}
			out.Println()
			return nil
		},
	}

	return cmd
}
