package link

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLinkFailed wraps every link creation failure.
var ErrLinkFailed = errors.New("link creation failed")

// Outcome is the result of reconciling one link.
type Outcome int

const (
	// AlreadyPresent means an entry existed at the link path; nothing was done.
	AlreadyPresent Outcome = iota
	// Created means a new link was created.
	Created
	// Failed means the link did not exist and could not be created.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case AlreadyPresent:
		return "already-present"
	case Created:
		return "created"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result carries an Outcome and, for Failed, the cause.
type Result struct {
	Outcome Outcome
	Err     error
}

// Creator creates a directory link at link resolving to target.
type Creator interface {
	CreateDirectoryLink(target, link string) error
}

// Reconciler creates missing directory links.
type Reconciler struct {
	creator Creator
}

// NewReconciler returns a Reconciler using c to create links.
func NewReconciler(c Creator) *Reconciler {
	return &Reconciler{creator: c}
}

// Reconcile ensures something exists at linkPath. If an entry of any kind is
// already there it reports AlreadyPresent. Otherwise parent directories are
// created as needed and a directory link to target is created.
func (r *Reconciler) Reconcile(linkPath, target string) Result {
	if r.Exists(linkPath) {
		return Result{Outcome: AlreadyPresent}
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return failed(linkPath, fmt.Errorf("create parent directory: %w", err))
	}

	// Check again right before creating.
	if r.Exists(linkPath) {
		return Result{Outcome: AlreadyPresent}
	}
	if err := r.creator.CreateDirectoryLink(target, linkPath); err != nil {
		return failed(linkPath, err)
	}
	return Result{Outcome: Created}
}

func failed(linkPath string, err error) Result {
	return Result{Outcome: Failed, Err: fmt.Errorf("%w: %s: %w", ErrLinkFailed, linkPath, err)}
}

// Exists reports whether any entry (including a dangling link) is at path.
func (r *Reconciler) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
