package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestEnvKeysHelp(t *testing.T) {
	help := envKeysHelp()
	for _, want := range []string{"SOURCES", "TEMPLATES", "ASSETS", "(required)"} {
		if !strings.Contains(help, want) {
			t.Errorf("envKeysHelp() missing %q:\n%s", want, help)
		}
	}
	if strings.Count(help, "(required)") != 1 {
		t.Errorf("envKeysHelp() should mark only SOURCES as required:\n%s", help)
	}
}

func TestVaultRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{name: "flag wins", flag: "/from/flag", env: "/from/env", want: "/from/flag"},
		{name: "env fallback", env: "/from/env", want: "/from/env"},
		{name: "working directory", want: wd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(RootEnv, tt.env)
			vaultFlag = tt.flag
			t.Cleanup(func() { vaultFlag = "" })

			got, err := vaultRoot()
			if err != nil {
				t.Fatalf("vaultRoot() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("vaultRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

// resetCommands restores every flag of the command tree to its default
// and drops the context a previous run stored on each command. Cobra
// keeps both between Execute calls.
func resetCommands(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	// nil lets the next run inherit the root context
	c.SetContext(nil)
	for _, sub := range c.Commands() {
		resetCommands(sub)
	}
}

// execute runs the vault command line and returns the exit code with
// everything written to stdout and stderr.
func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	reset := func() {
		resetCommands(rootCmd)
		vaultFlag, verbose, quiet = "", false, false
		cfg = nil
	}
	reset()
	t.Cleanup(reset)

	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// isolate points HOME at an empty directory and clears configuration
// variables the test environment might carry.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(RootEnv, "")
	for _, key := range []string{"SOURCES", "TEMPLATES", "ASSETS"} {
		t.Setenv(key, "")
	}
}

// newVaultRoot creates a vault root whose .env names one source root
// holding a single repository. Returns the vault root.
func newVaultRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "vault")
	src := filepath.Join(dir, "src")
	for _, d := range []string{root, filepath.Join(src, "repoA", ".git")} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("SOURCES="+src+"\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	return root
}

func TestRun_ExitCodes(t *testing.T) {
	emptyRoot := t.TempDir()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout []string
		wantStderr []string
	}{
		{
			name:       "no arguments prints help",
			wantStdout: []string{"Usage:", "SOURCES", "TEMPLATES", "ASSETS"},
		},
		{
			name:       "help flag",
			args:       []string{"-h"},
			wantStdout: []string{"Usage:", "(required)", "--vault"},
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantStdout: []string{"vault dev"},
		},
		{
			name:       "unknown command",
			args:       []string{"frobnicate"},
			wantCode:   1,
			wantStderr: []string{`unknown command "frobnicate"`, "Run 'vault -h' for help"},
		},
		{
			name:       "add without url",
			args:       []string{"add"},
			wantCode:   1,
			wantStderr: []string{"accepts 1 arg(s), received 0"},
		},
		{
			name:       "verbose and quiet together",
			args:       []string{"status", "-v", "-q", "-C", emptyRoot},
			wantCode:   1,
			wantStderr: []string{"none of the others can be"},
		},
		{
			name:       "status without SOURCES",
			args:       []string{"status", "-C", emptyRoot},
			wantCode:   1,
			wantStderr: []string{"SOURCES is not configured"},
		},
		{
			name:       "pull without SOURCES",
			args:       []string{"pull", "-C", emptyRoot},
			wantCode:   1,
			wantStderr: []string{"SOURCES is not configured"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			code, stdout, stderr := execute(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout:\n%s\nstderr:\n%s", code, tt.wantCode, stdout, stderr)
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr missing %q:\n%s", want, stderr)
				}
			}
		})
	}

	entries, err := os.ReadDir(emptyRoot)
	if err != nil {
		t.Fatalf("read vault root: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed commands must not touch the vault root, found %d entries", len(entries))
	}
}

func TestRun_Status(t *testing.T) {
	isolate(t)
	root := newVaultRoot(t)

	code, stdout, stderr := execute(t, "status", "-C", root)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "repoA") || !strings.Contains(stdout, "0 linked, 1 without link") {
		t.Errorf("unexpected status output:\n%s", stdout)
	}
}

func TestRun_GitOnlyRequiredForCommandsThatRunIt(t *testing.T) {
	isolate(t)
	root := newVaultRoot(t)
	t.Setenv("PATH", "")

	code, stdout, stderr := execute(t, "status", "-C", root)
	if code != 0 {
		t.Errorf("status without git: exit code = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "1 without link") {
		t.Errorf("status without git: unexpected output:\n%s", stdout)
	}

	for _, args := range [][]string{
		{"pull", "-C", root},
		{"add", "git@github.com:org/repoB.git", "-C", root},
	} {
		code, _, stderr := execute(t, args...)
		if code != 1 {
			t.Errorf("%s without git: exit code = %d, want 1", args[0], code)
		}
		if !strings.Contains(stderr, "git not found") {
			t.Errorf("%s without git: stderr missing git error:\n%s", args[0], stderr)
		}
	}

	if _, err := os.Lstat(filepath.Join(root, "repoA")); !os.IsNotExist(err) {
		t.Errorf("pull without git must not create links, Lstat err = %v", err)
	}
}
