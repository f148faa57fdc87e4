package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/raphi011/vault/internal/config"
	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/output"
	"github.com/raphi011/vault/internal/ui/styles"
	"github.com/raphi011/vault/internal/vault"
)

// Run performs diagnostic checks on the vault and optionally creates
// missing links. It returns an error wrapping ErrIssuesFound when issues
// remain.
func Run(ctx context.Context, cfg *config.Config, v *vault.Vault, fix bool) error {
	out := output.FromContext(ctx)

	stats := IssueStats{Sources: len(cfg.Sources)}
	var allIssues []Issue

	out.Println("Checking tools...")
	allIssues = append(allIssues, checkTools()...)

	out.Println("Checking configuration...")
	allIssues = append(allIssues, checkConfig(cfg)...)

	out.Println("Checking links...")
	linkIssues, err := checkLinks(ctx, v, &stats)
	if err != nil {
		return err
	}
	allIssues = append(allIssues, linkIssues...)

	printSummary(ctx, out, cfg, stats)

	if len(allIssues) == 0 {
		out.Printf("\n%s No issues found\n", styles.PresentMark())
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(allIssues))
	printIssuesByCategory(out, allIssues)

	if fix {
		out.Println("\nFixing...")
		if remaining := fixAllIssues(ctx, v, allIssues); remaining > 0 {
			return fmt.Errorf("%w: %d remaining after fix", ErrIssuesFound, remaining)
		}
		return nil
	}

	if stats.Missing > 0 {
		out.Println("\nRun 'vault doctor --fix' to create missing links.")
	}
	return fmt.Errorf("%w: %d", ErrIssuesFound, len(allIssues))
}

// printSummary prints what was checked.
func printSummary(ctx context.Context, out *output.Printer, cfg *config.Config, stats IssueStats) {
	out.Println()

	if v := git.Version(ctx); v != "" {
		out.Item(styles.PresentMark(), "%s", v)
	}

	if _, err := os.Stat(cfg.EnvFile); errors.Is(err, fs.ErrNotExist) {
		out.Item(styles.WarningMark(), "%s not found, SOURCES taken from the environment", cfg.EnvFile)
	} else {
		out.Item(styles.PresentMark(), "%s", cfg.EnvFile)
	}

	out.Item(styles.PresentMark(), "%d source roots, %d repositories", stats.Sources, stats.Repos)
	if stats.Linked > 0 {
		out.Item(styles.PresentMark(), "%d links healthy", stats.Linked)
	}
	if stats.Missing > 0 {
		out.Item(styles.WarningMark(), "%d repositories without link", stats.Missing)
	}
	if stats.Mismatched > 0 {
		out.Item(styles.FailedMark(), "%d link paths occupied by something else", stats.Mismatched)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryTools:  "Tool issues",
		CategoryConfig: "Configuration issues",
		CategoryLinks:  "Link issues",
	}

	for _, cat := range []IssueCategory{CategoryTools, CategoryConfig, CategoryLinks} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Section(categoryNames[cat])
		for _, issue := range catIssues {
			out.Entry(issue.Key, issue.Description)
		}
	}
}
