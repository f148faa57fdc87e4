package git

import (
	"context"
	"io"

	"github.com/raphi011/vault/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// streamGit executes a git command, passing its output through to w, and
// returns the captured stderr.
func streamGit(ctx context.Context, w io.Writer, dir string, args ...string) (string, error) {
	return cmd.StreamContext(ctx, "", w, "git", gitArgs(dir, args)...)
}
