package vault

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/link"
)

var (
	// ErrCloneFailed is returned by Add when a fresh clone fails.
	ErrCloneFailed = errors.New("clone failed")
	// ErrNoSources is returned by Add when no source root is configured.
	ErrNoSources = errors.New("no source roots configured")
)

// Config is the frozen configuration for one run.
type Config struct {
	Root    string   // vault root
	Sources []string // source roots in configured order
	Exclude []string // extra directory names skipped during discovery
	GOOS    string   // platform family for manual recovery hints; defaults to runtime.GOOS
}

// VCS synchronizes and clones working copies.
type VCS interface {
	Synchronize(ctx context.Context, dir string) git.Result
	Clone(ctx context.Context, remote, dest string) git.Result
	IsWorkingCopy(dir string) bool
}

// Linker reconciles and inspects directory links.
type Linker interface {
	Reconcile(linkPath, target string) link.Result
	Inspect(linkPath, target string) link.State
}

// Vault runs the pull, add and status operations.
type Vault struct {
	cfg    Config
	vcs    VCS
	linker Linker
}

// New creates a Vault.
func New(cfg Config, vcs VCS, linker Linker) *Vault {
	if cfg.GOOS == "" {
		cfg.GOOS = runtime.GOOS
	}
	return &Vault{cfg: cfg, vcs: vcs, linker: linker}
}

// Repo is a discovered repository and its place in the vault.
type Repo struct {
	Source string // source root it was found under
	Path   string // absolute path of the working copy
	Rel    string // relative mapping, shared by source and vault side
	Link   string // link path below the vault root
}

// discover returns every repository below the configured source roots,
// in source order. Repositories that cannot be mapped are passed to skip.
func (v *Vault) discover(skip func(path string, err error)) []Repo {
	var repos []Repo
	opts := []git.DiscoverOption{git.WithExclude(v.cfg.Exclude...)}
	var claimed []Repo

	for _, source := range v.cfg.Sources {
		for _, path := range git.FindGitRepos(source, opts...) {
			rel, err := git.RelativeMapping(source, path)
			if err != nil {
				if skip != nil {
					skip(path, err)
				}
				continue
			}
			// A source root that is itself a repository is linked under
			// its own name instead of over the vault root.
			if rel == "." {
				rel = filepath.Base(path)
			}
			repo := Repo{
				Source: source,
				Path:   path,
				Rel:    rel,
				Link:   filepath.Join(v.cfg.Root, rel),
			}
			if err := overlaps(claimed, repo); err != nil {
				if skip != nil {
					skip(path, err)
				}
				continue
			}
			claimed = append(claimed, repo)
			repos = append(repos, repo)
		}
	}

	return repos
}

// overlaps reports a link path that is taken by, nested in, or contains the
// link path of an already claimed repository. A nested link would be created
// through the outer link, inside the other repository's working copy.
func overlaps(claimed []Repo, repo Repo) error {
	for _, c := range claimed {
		switch {
		case c.Link == repo.Link:
			return fmt.Errorf("link %s is already used by %s", displayPath(repo.Rel), c.Path)
		case within(c.Link, repo.Link):
			return fmt.Errorf("link %s would be inside the link of %s", displayPath(repo.Rel), c.Path)
		case within(repo.Link, c.Link):
			return fmt.Errorf("link %s would contain the link of %s", displayPath(repo.Rel), c.Path)
		}
	}
	return nil
}

// within reports whether path lies strictly below dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != "." && filepath.IsLocal(rel)
}

// displayPath renders a relative mapping with forward slashes.
func displayPath(rel string) string {
	return filepath.ToSlash(rel)
}
