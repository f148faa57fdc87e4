package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/vault/internal/cmd"
)

// runGit executes a git command in dir for test setup.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// commitFile writes name in repoPath and commits it.
func commitFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	ctx := context.Background()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", "update "+name); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// setupTestRepoWithOrigin creates a repo with a bare origin remote and one
// pushed commit on main.
// Returns (repoPath, originPath).
func setupTestRepoWithOrigin(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := resolveTempDir(t)

	originPath := filepath.Join(tmpDir, "origin.git")
	repoPath := filepath.Join(tmpDir, "repo")

	ctx := context.Background()

	// -b main ensures a consistent default branch across git versions
	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}
	if err := runGit(ctx, "", "clone", originPath, repoPath); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}

	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n")

	if err := runGit(ctx, repoPath, "push", "-u", "origin", "HEAD:main"); err != nil {
		t.Fatalf("failed to push: %v", err)
	}

	return repoPath, originPath
}
