package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/vault/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Version returns the output of "git --version", or an empty string if git
// cannot be run.
func Version(ctx context.Context) string {
	out, err := cmd.OutputContext(ctx, "", "git", "--version")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
