package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// Result is the outcome of a synchronize or clone.
type Result struct {
	OK     bool   // the git command exited successfully
	Output string // captured diagnostic text (git's stderr)
	Err    error  // nil when OK
}

// Error returns the failure message, or an empty string when OK.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

func resultOf(diag string, err error) Result {
	return Result{OK: err == nil, Output: diag, Err: err}
}

// CLI implements working-copy synchronization and cloning with the git binary.
type CLI struct {
	// Out receives git's output as it runs.
	Out io.Writer
	// Progress asks git to report progress even though its stderr is
	// captured rather than attached to a terminal.
	Progress bool
}

// NewCLI returns a CLI writing git output to out. Progress reporting is
// enabled when out is an interactive terminal.
func NewCLI(out io.Writer) *CLI {
	return &CLI{Out: out, Progress: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Synchronize pulls the latest changes into the working copy at dir.
// Only fast-forwards are applied so local work is never merged implicitly.
func (c *CLI) Synchronize(ctx context.Context, dir string) Result {
	args := []string{"pull", "--ff-only"}
	if c.Progress {
		args = append(args, "--progress")
	}
	return resultOf(streamGit(ctx, c.Out, dir, args...))
}

// Clone creates a working copy of remote at dest. Missing parent
// directories of dest are created first.
func (c *CLI) Clone(ctx context.Context, remote, dest string) Result {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return resultOf("", fmt.Errorf("create parent directory: %w", err))
	}

	args := []string{"clone"}
	if c.Progress {
		args = append(args, "--progress")
	}
	args = append(args, "--", remote, dest)
	return resultOf(streamGit(ctx, c.Out, "", args...))
}

// IsWorkingCopy reports whether dir is a working copy.
func (c *CLI) IsWorkingCopy(dir string) bool {
	return IsWorkingCopy(dir)
}
