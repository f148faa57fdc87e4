package link

import (
	"os"
	"path/filepath"
	"strings"
)

// State classifies what is found at a link path.
type State int

const (
	// Missing means nothing exists at the link path.
	Missing State = iota
	// Linked means the link path is a link resolving to the expected target.
	Linked
	// Mismatch means an entry exists but is not a link to the target:
	// a plain directory, a file, a dangling link or a link elsewhere.
	Mismatch
)

func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case Linked:
		return "linked"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Present reports whether any entry exists, which is what reconciliation
// treats as satisfied.
func (s State) Present() bool {
	return s != Missing
}

// Inspect classifies linkPath against target without modifying anything.
func (r *Reconciler) Inspect(linkPath, target string) State {
	info, err := os.Lstat(linkPath)
	if err != nil {
		return Missing
	}
	if !isLink(info) {
		return Mismatch
	}

	resolved, err := os.Stat(linkPath)
	if err != nil {
		return Mismatch
	}
	want, err := os.Stat(target)
	if err != nil {
		return Mismatch
	}
	if !os.SameFile(resolved, want) {
		return Mismatch
	}
	return Linked
}

// LinkedParent returns the first directory strictly between root and path
// that is itself a link. Creating anything at path would then write into the
// link's target instead of below root.
func LinkedParent(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", false
	}

	dir := root
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		dir = filepath.Join(dir, part)
		info, err := os.Lstat(dir)
		if err != nil {
			return "", false
		}
		if isLink(info) {
			return dir, true
		}
	}
	return "", false
}

// isLink reports symlinks and, on windows, junctions (irregular files).
func isLink(info os.FileInfo) bool {
	return info.Mode()&(os.ModeSymlink|os.ModeIrregular) != 0
}
