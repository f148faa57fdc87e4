package doctor

import (
	"errors"

	"github.com/raphi011/vault/internal/vault"
)

// ErrIssuesFound is returned by Run when unresolved issues remain.
var ErrIssuesFound = errors.New("issues found")

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryTools represents missing external tools.
	CategoryTools IssueCategory = "tools"
	// CategoryConfig represents problems with .env values or directories.
	CategoryConfig IssueCategory = "config"
	// CategoryLinks represents missing or mismatched vault links.
	CategoryLinks IssueCategory = "links"
)

// FixAction names what --fix would do for an issue.
type FixAction string

const (
	// FixNone means the issue needs manual attention.
	FixNone FixAction = ""
	// FixLink means the missing link can be created.
	FixLink FixAction = "link"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // path or repository the issue is about
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
	Repo        *vault.Repo   // for link repairs
}

// IssueStats tracks counts by category.
type IssueStats struct {
	Sources    int // source roots checked
	Repos      int // repositories discovered
	Linked     int // repositories whose link resolves to them
	Missing    int // repositories without a link
	Mismatched int // link paths occupied by something else
}
