package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

func open(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	return repo, nil
}

// CurrentBranch returns the short name of the branch checked out in dir.
// A detached HEAD is reported as the abbreviated commit hash.
func CurrentBranch(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD in %s: %w", dir, err)
	}

	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String()[:7], nil
}

// OriginURL returns the first URL configured for the "origin" remote.
func OriginURL(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("origin remote in %s: %w", dir, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote in %s has no URL", dir)
	}
	return urls[0], nil
}
