package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/log"
	"github.com/raphi011/vault/internal/output"
	"github.com/raphi011/vault/internal/ui/styles"
)

var errInsideLink = errors.New("parent is a link")

// PullSummary counts what Pull did.
type PullSummary struct {
	Processed  int // repositories visited
	Created    int // links newly created
	Present    int // links that already existed
	SyncFailed int // repositories whose pull failed
	LinkFailed int // links that could not be created
}

// Pull synchronizes the vault's own working copy, then every repository
// below every source root, and links each repository into the vault.
// Failures are reported per repository and never stop the run. The only
// error returned is the context's, checked between repositories.
func (v *Vault) Pull(ctx context.Context) (PullSummary, error) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	var s PullSummary

	if v.vcs.IsWorkingCopy(v.cfg.Root) {
		out.Printf("Pulling vault %s\n", v.cfg.Root)
		if res := v.vcs.Synchronize(ctx, v.cfg.Root); !res.OK {
			if err := ctx.Err(); err != nil {
				return s, err
			}
			l.Warnf("failed to pull vault: %s", res.Error())
		}
	}

	repos := v.discover(func(path string, err error) {
		l.Warnf("skipping %s: %v", path, err)
	})
	l.Debug("discovered repositories", "sources", len(v.cfg.Sources), "repos", len(repos))

	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		s.Processed++

		rel := displayPath(repo.Rel)
		out.Step(styles.ArrowMark(), "%s", styles.Bold.Render(rel))

		if res := v.vcs.Synchronize(ctx, repo.Path); !res.OK {
			if err := ctx.Err(); err != nil {
				return s, err
			}
			s.SyncFailed++
			l.Warnf("failed to pull %s: %s", rel, res.Error())
		}

		res := v.Link(ctx, repo)
		switch res.Outcome {
		case link.Created:
			s.Created++
			out.Item(styles.CreatedMark(), "linked %s", repo.Link)
		case link.AlreadyPresent:
			s.Present++
			out.Item(styles.PresentMark(), "link present")
		default:
			s.LinkFailed++
			out.Item(styles.FailedMark(), "link failed")
			l.Warnf("%v", res.Err)
		}
	}

	return s, nil
}

// Link reconciles the link for repo and, once a link is in place, keeps it
// out of the vault's own version control.
func (v *Vault) Link(ctx context.Context, repo Repo) link.Result {
	res := v.reconcile(repo.Link, repo.Path)
	if res.Outcome != link.Failed {
		v.ignore(ctx, repo.Rel)
	}
	return res
}

// reconcile refuses link paths below an existing link, which would place
// the new link inside another repository, and otherwise hands off to the
// linker.
func (v *Vault) reconcile(linkPath, target string) link.Result {
	if parent, ok := link.LinkedParent(v.cfg.Root, linkPath); ok {
		return link.Result{
			Outcome: link.Failed,
			Err:     fmt.Errorf("%w: %s: %w %s", link.ErrLinkFailed, linkPath, errInsideLink, parent),
		}
	}
	return v.linker.Reconcile(linkPath, target)
}

// ignore keeps a linked repository out of the vault's own version control.
func (v *Vault) ignore(ctx context.Context, rel string) {
	if !v.vcs.IsWorkingCopy(v.cfg.Root) {
		return
	}
	added, err := EnsureIgnored(v.cfg.Root, rel)
	if err != nil {
		log.FromContext(ctx).Warnf("failed to update %s: %v", IgnoreFileName, err)
		return
	}
	if added {
		log.FromContext(ctx).Debug("ignored link", "path", displayPath(rel))
	}
}
