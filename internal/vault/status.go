package vault

import (
	"context"
	"fmt"
	"io"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/log"
	"github.com/raphi011/vault/internal/ui/static"
	"github.com/raphi011/vault/internal/ui/styles"
)

// StatusEntry is one repository in a status report.
type StatusEntry struct {
	Repo
	Branch string     // checked-out branch, empty if unknown
	State  link.State // link state at Repo.Link
}

// StatusReport is the result of Status.
type StatusReport struct {
	Entries    []StatusEntry
	Linked     int // an entry exists at the link path
	Unlinked   int // nothing at the link path
	Mismatched int // subset of Linked whose entry doesn't point at the repository
}

// Status discovers every repository and checks whether its link exists.
// When filter is non-empty only repositories whose relative path fuzzily
// matches it are reported. Nothing is created or modified.
func (v *Vault) Status(ctx context.Context, filter string) (StatusReport, error) {
	l := log.FromContext(ctx)

	repos := v.discover(func(path string, err error) {
		l.Warnf("skipping %s: %v", path, err)
	})
	repos = filterRepos(repos, filter)

	var report StatusReport
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		entry := StatusEntry{
			Repo:  repo,
			State: v.linker.Inspect(repo.Link, repo.Path),
		}
		if branch, err := git.CurrentBranch(repo.Path); err == nil {
			entry.Branch = branch
		} else {
			l.Debug("cannot read branch", "repo", displayPath(repo.Rel), "error", err)
		}

		switch entry.State {
		case link.Missing:
			report.Unlinked++
		case link.Mismatch:
			report.Linked++
			report.Mismatched++
		default:
			report.Linked++
		}
		report.Entries = append(report.Entries, entry)
	}

	return report, nil
}

func filterRepos(repos []Repo, filter string) []Repo {
	if filter == "" {
		return repos
	}

	rels := make([]string, len(repos))
	for i, r := range repos {
		rels[i] = displayPath(r.Rel)
	}

	matches := fuzzy.Find(filter, rels)
	keep := make([]bool, len(repos))
	for _, m := range matches {
		keep[m.Index] = true
	}

	var filtered []Repo
	for i, r := range repos {
		if keep[i] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Summary renders the report's counts, e.g. "2 linked, 1 without link".
func (r StatusReport) Summary() string {
	s := fmt.Sprintf("%d linked, %d without link", r.Linked, r.Unlinked)
	if r.Mismatched > 0 {
		s += fmt.Sprintf(" (%d not pointing at their repository)", r.Mismatched)
	}
	return s
}

// RenderStatus writes the report as a table followed by the summary line.
func RenderStatus(w io.Writer, r StatusReport) {
	if len(r.Entries) == 0 {
		fmt.Fprintln(w, "No repositories found")
		return
	}

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{
			displayPath(e.Rel),
			e.Branch,
			styles.FormatLinkState(e.State),
			e.Source,
		})
	}

	fmt.Fprint(w, static.RenderTable([]string{"REPO", "BRANCH", "LINK", "SOURCE"}, rows))
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Summary())
}
