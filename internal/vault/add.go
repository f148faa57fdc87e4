package vault

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/log"
	"github.com/raphi011/vault/internal/output"
	"github.com/raphi011/vault/internal/ui/styles"
)

// ErrInvalidLinkPath is returned by Add when a --link override is absolute
// or leaves the vault root.
var ErrInvalidLinkPath = errors.New("invalid link path")

// AddResult describes what Add did.
type AddResult struct {
	Remote  git.Remote
	Dest    string       // working copy below the first source root
	Link    string       // link path below the vault root
	Cloned  bool         // false when an existing working copy was pulled
	Outcome link.Outcome // link reconciliation outcome
}

// Add clones remote into the first source root (or pulls it if a working
// copy is already there) and links it into the vault. The link path is
// linkOverride when set, otherwise the remote's project path; both are
// relative to the vault root.
func (v *Vault) Add(ctx context.Context, remote, linkOverride string) (AddResult, error) {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	r, err := git.ParseRemote(remote)
	if err != nil {
		return AddResult{}, err
	}
	if len(v.cfg.Sources) == 0 {
		return AddResult{}, ErrNoSources
	}

	rel := r.RelPath()
	linkRel := rel
	if linkOverride != "" {
		linkRel = filepath.Clean(filepath.FromSlash(linkOverride))
		if linkRel == "." || !filepath.IsLocal(linkRel) {
			return AddResult{}, fmt.Errorf("%w %q: must be relative to the vault root and stay inside it", ErrInvalidLinkPath, linkOverride)
		}
	}

	result := AddResult{
		Remote: r,
		Dest:   filepath.Join(v.cfg.Sources[0], filepath.FromSlash(rel)),
		Link:   filepath.Join(v.cfg.Root, filepath.FromSlash(linkRel)),
	}
	if parent, ok := link.LinkedParent(v.cfg.Root, result.Link); ok {
		return result, fmt.Errorf("%w %s: %s is a link into another repository; choose a path with --link",
			ErrInvalidLinkPath, result.Link, parent)
	}
	l.Debug("adding repository", "remote", r.String(), "dest", result.Dest, "link", result.Link)

	if v.vcs.IsWorkingCopy(result.Dest) {
		out.Step(styles.ArrowMark(), "%s exists, pulling", result.Dest)
		if origin, err := git.OriginURL(result.Dest); err == nil && !sameRemote(origin, r) {
			l.Warnf("%s has origin %s, not %s", result.Dest, origin, remote)
		}
		if res := v.vcs.Synchronize(ctx, result.Dest); !res.OK {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			l.Warnf("failed to pull %s: %s", result.Dest, res.Error())
		}
	} else {
		out.Step(styles.ArrowMark(), "Cloning %s into %s", remote, result.Dest)
		res := v.vcs.Clone(ctx, remote, result.Dest)
		if !res.OK {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			return result, fmt.Errorf("%w: %s: %s", ErrCloneFailed, remote, res.Error())
		}
		result.Cloned = true
	}

	lr := v.reconcile(result.Link, result.Dest)
	result.Outcome = lr.Outcome
	switch lr.Outcome {
	case link.Created:
		out.Item(styles.CreatedMark(), "linked %s", result.Link)
	case link.AlreadyPresent:
		out.Item(styles.PresentMark(), "link already present at %s", result.Link)
	default:
		return result, fmt.Errorf("%w\n\nCreate the link manually:\n  %s",
			lr.Err, link.RecoveryCommand(v.cfg.GOOS, result.Dest, result.Link))
	}

	v.ignore(ctx, linkRel)
	return result, nil
}

// sameRemote reports whether url names the same repository as r,
// regardless of SSH or HTTPS shape.
func sameRemote(url string, r git.Remote) bool {
	o, err := git.ParseRemote(url)
	if err != nil {
		return false
	}
	return o == r
}
