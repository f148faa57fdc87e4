package vault

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/log"
	"github.com/raphi011/vault/internal/output"
)

// fakeVCS records calls. Clone creates a working copy marker at dest.
type fakeVCS struct {
	synced    []string
	cloned    [][2]string
	syncFail  map[string]bool
	cloneFail bool
}

func (f *fakeVCS) Synchronize(_ context.Context, dir string) git.Result {
	f.synced = append(f.synced, dir)
	if f.syncFail[dir] {
		return git.Result{Output: "fatal: could not read from remote", Err: errors.New("fatal: could not read from remote")}
	}
	return git.Result{OK: true}
}

func (f *fakeVCS) Clone(_ context.Context, remote, dest string) git.Result {
	f.cloned = append(f.cloned, [2]string{remote, dest})
	if f.cloneFail {
		return git.Result{Output: "fatal: repository not found", Err: errors.New("fatal: repository not found")}
	}
	if err := os.MkdirAll(filepath.Join(dest, git.MarkerDir), 0755); err != nil {
		return git.Result{Err: err}
	}
	return git.Result{OK: true}
}

func (f *fakeVCS) IsWorkingCopy(dir string) bool {
	return git.IsWorkingCopy(dir)
}

// failingCreator refuses to create any link.
type failingCreator struct{}

func (failingCreator) CreateDirectoryLink(_, _ string) error {
	return os.ErrPermission
}

type testEnv struct {
	root   string // vault root
	source string // first source root
	out    *bytes.Buffer
	errOut *bytes.Buffer
	ctx    context.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	env := &testEnv{
		root:   filepath.Join(tmp, "vault"),
		source: filepath.Join(tmp, "src"),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	for _, dir := range []string{env.root, env.source} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	ctx := log.WithLogger(context.Background(), log.New(env.errOut, false, false))
	env.ctx = output.WithPrinter(ctx, env.out)
	return env
}

func (e *testEnv) vault(vcs VCS, creator link.Creator, sources ...string) *Vault {
	if len(sources) == 0 {
		sources = []string{e.source}
	}
	return New(Config{Root: e.root, Sources: sources, GOOS: "linux"}, vcs, link.NewReconciler(creator))
}

// mkRepo creates dir/rel with a .git marker directory.
func mkRepo(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Join(path, git.MarkerDir), 0755); err != nil {
		t.Fatalf("failed to create repo %s: %v", rel, err)
	}
	return path
}

// snapshot lists every entry below dir with its mode and mtime so tests can
// assert that nothing changed.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := os.Lstat(path)
		if err != nil {
			return err
		}
		snap[path] = info.Mode().String() + " " + info.ModTime().String()
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", dir, err)
	}
	return snap
}
