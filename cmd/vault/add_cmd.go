package main

import (
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var linkPath string

	cmd := &cobra.Command{
		Use:         "add <remote>",
		Short:       "Clone a repository and link it into the vault",
		GroupID:     GroupCore,
		Annotations: needsGit(),
		Args:        cobra.ExactArgs(1),
		Long: `Clone a repository into the first source root and link it into the vault.

The clone goes to <first source>/<project path>, where the project path is
the remote path without its organization. If a working copy already exists
there it is pulled instead. The link is created at the same relative path
below the vault root, or at --link.`,
		Example: `  vault add git@github.com:org/group/project.git
  vault add https://github.com/org/project
  vault add git@github.com:org/project.git --link work/project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newVault(cmd).Add(cmd.Context(), args[0], linkPath)
			return err
		},
	}

	cmd.Flags().StringVar(&linkPath, "link", "", "Link path relative to the vault root")

	return cmd
}
