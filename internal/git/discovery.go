package git

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// MarkerDir is the name of the version-control marker inside a working copy.
const MarkerDir = ".git"

// DefaultExclude lists directory names never searched for repositories.
var DefaultExclude = []string{"node_modules"}

// DiscoverOption configures FindGitRepos.
type DiscoverOption func(*discoverer)

// WithExclude adds directory names to skip during discovery.
func WithExclude(names ...string) DiscoverOption {
	return func(d *discoverer) {
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				d.exclude[n] = true
			}
		}
	}
}

type discoverer struct {
	exclude map[string]bool
	repos   []string
}

// FindGitRepos returns the repository roots at or below root.
//
// A directory containing a .git entry is recorded and not descended into, so
// no result is ever an ancestor of another. Hidden directories and excluded
// names (node_modules by default) are skipped, symlinked directories are not
// followed, and unreadable directories are ignored. A root that does not
// exist yields an empty result. The returned paths are sorted.
func FindGitRepos(root string, opts ...DiscoverOption) []string {
	d := &discoverer{exclude: make(map[string]bool, len(DefaultExclude))}
	for _, n := range DefaultExclude {
		d.exclude[n] = true
	}
	for _, opt := range opts {
		opt(d)
	}

	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	d.walk(root)
	slices.Sort(d.repos)
	return d.repos
}

func (d *discoverer) walk(dir string) {
	if IsWorkingCopy(dir) {
		d.repos = append(d.repos, dir)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || d.exclude[name] {
			continue
		}
		d.walk(filepath.Join(dir, name))
	}
}

// IsWorkingCopy reports whether dir has a .git marker as a direct child.
// The marker may be a directory (regular clone) or a file (linked worktree
// or submodule).
func IsWorkingCopy(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerDir))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// RelativeMapping returns the path of repo relative to root. The same
// relative path is used below the vault root for the repository's link.
func RelativeMapping(root, repo string) (string, error) {
	rel, err := filepath.Rel(root, repo)
	if err != nil {
		return "", fmt.Errorf("relative path of %s under %s: %w", repo, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not below %s", repo, root)
	}
	return rel, nil
}
