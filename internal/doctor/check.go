package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/raphi011/vault/internal/config"
	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/vault"
)

// checkTools verifies external tools are installed.
func checkTools() []Issue {
	if err := git.CheckGit(); err != nil {
		return []Issue{{
			Key:         "git",
			Description: err.Error(),
			Category:    CategoryTools,
		}}
	}
	return nil
}

// checkConfig verifies the vault root is writable and every source root is
// an existing directory.
func checkConfig(cfg *config.Config) []Issue {
	var issues []Issue

	if err := checkWritable(cfg.Root); err != nil {
		issues = append(issues, Issue{
			Key:         cfg.Root,
			Description: fmt.Sprintf("vault root is not writable: %v", err),
			Category:    CategoryConfig,
		})
	}

	for _, source := range cfg.Sources {
		info, err := os.Stat(source)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			issues = append(issues, Issue{
				Key:         source,
				Description: "source root does not exist",
				Category:    CategoryConfig,
			})
		case err != nil:
			issues = append(issues, Issue{
				Key:         source,
				Description: fmt.Sprintf("source root is not accessible: %v", err),
				Category:    CategoryConfig,
			})
		case !info.IsDir():
			issues = append(issues, Issue{
				Key:         source,
				Description: "source root is not a directory",
				Category:    CategoryConfig,
			})
		}
	}

	return issues
}

// checkWritable creates and removes a temporary file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".vault-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// checkLinks inspects the link of every discovered repository.
func checkLinks(ctx context.Context, v *vault.Vault, stats *IssueStats) ([]Issue, error) {
	report, err := v.Status(ctx, "")
	if err != nil {
		return nil, err
	}

	var issues []Issue
	stats.Repos = len(report.Entries)
	for _, e := range report.Entries {
		repo := e.Repo
		switch e.State {
		case link.Linked:
			stats.Linked++
		case link.Missing:
			stats.Missing++
			issues = append(issues, Issue{
				Key:         repo.Link,
				Description: fmt.Sprintf("no link for %s", repo.Path),
				FixAction:   FixLink,
				Category:    CategoryLinks,
				Repo:        &repo,
			})
		case link.Mismatch:
			stats.Mismatched++
			issues = append(issues, Issue{
				Key:         repo.Link,
				Description: fmt.Sprintf("entry does not point at %s (remove it and run 'vault pull')", repo.Path),
				Category:    CategoryLinks,
				Repo:        &repo,
			})
		}
	}

	return issues, nil
}
