package doctor

import (
	"context"

	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/output"
	"github.com/raphi011/vault/internal/ui/styles"
	"github.com/raphi011/vault/internal/vault"
)

// fixAllIssues applies fixes for all repairable issues and returns the
// number of issues that remain.
func fixAllIssues(ctx context.Context, v *vault.Vault, issues []Issue) int {
	out := output.FromContext(ctx)
	remaining := 0

	for _, issue := range issues {
		switch issue.FixAction {
		case FixLink:
			if err := ctx.Err(); err != nil {
				remaining++
				continue
			}
			res := v.Link(ctx, *issue.Repo)
			if res.Outcome == link.Failed {
				out.Item(styles.FailedMark(), "failed to link %s: %v", issue.Key, res.Err)
				remaining++
				continue
			}
			out.Item(styles.CreatedMark(), "linked %s", issue.Key)

		default:
			remaining++
		}
	}

	return remaining
}
