package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/vault/internal/config"
	"github.com/raphi011/vault/internal/git"
	"github.com/raphi011/vault/internal/link"
	"github.com/raphi011/vault/internal/log"
	"github.com/raphi011/vault/internal/output"
	"github.com/raphi011/vault/internal/ui/styles"
	"github.com/raphi011/vault/internal/vault"
)

// RootEnv overrides the vault root when --vault is not given.
const RootEnv = "VAULT_ROOT"

var (
	// Global flags
	verbose   bool
	quiet     bool
	vaultFlag string

	// Shared state injected into commands
	cfg *config.Config
)

// annotationNeedsGit marks commands that run the git binary.
const annotationNeedsGit = "vault/needs-git"

// needsGit is the annotation set for commands that run the git binary.
func needsGit() map[string]string {
	return map[string]string{annotationNeedsGit: "true"}
}

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Keep a notes vault linked to every repository on disk",
	Long: `vault discovers git repositories below configured source roots, pulls
them, and links each one into the vault root at the same relative path.

Configuration is read from <vault root>/.env:

` + envKeysHelp() + `
Environment variables of the same name override the file.
The vault root is --vault, then $` + RootEnv + `, then the current directory.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed now, so the logger can honor them
		logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
		ctx := log.WithLogger(cmd.Context(), logger)
		cmd.SetContext(ctx)

		// status only reads through go-git; doctor reports a missing git itself
		if cmd.Annotations[annotationNeedsGit] == "true" {
			if err := git.CheckGit(); err != nil {
				return err
			}
		}

		root, err := vaultRoot()
		if err != nil {
			return err
		}

		loaded, err := config.Load(root, func(err error) {
			logger.Warnf("%v", err)
		})
		if err != nil {
			return err
		}
		cfg = &loaded
		styles.SetNerdfont(cfg.Nerdfont)

		logger.Debug("loaded configuration", "root", cfg.Root, "sources", strings.Join(cfg.Sources, ","))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Colors are downgraded when stdout is not a terminal.
	stdout := colorprofile.NewWriter(os.Stdout, os.Environ())

	code := run(ctx, os.Args[1:], stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
// stdout receives primary output, stderr diagnostics and errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Add output printer (stdout for primary data)
	rootCmd.SetContext(output.WithPrinter(ctx, stdout))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Run 'vault -h' for help")
		return 1
	}
	return 0
}

// vaultRoot resolves the vault root from --vault, $VAULT_ROOT or the
// working directory.
func vaultRoot() (string, error) {
	if vaultFlag != "" {
		return vaultFlag, nil
	}
	if env := os.Getenv(RootEnv); env != "" {
		return env, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// newVault wires the loaded configuration to git and the platform's
// directory links. git's own output goes to the command's stderr.
func newVault(cmd *cobra.Command) *vault.Vault {
	return vault.New(vault.Config{
		Root:    cfg.Root,
		Sources: cfg.Sources,
		Exclude: cfg.Discover.Exclude,
	}, git.NewCLI(cmd.ErrOrStderr()), link.NewReconciler(link.Native()))
}

// envKeysHelp renders config.Keys for the root help text.
func envKeysHelp() string {
	var b strings.Builder
	for _, k := range config.Keys {
		req := ""
		if k.Required {
			req = " (required)"
		}
		fmt.Fprintf(&b, "  %-10s %s%s\n", k.Name, k.Description, req)
	}
	return b.String()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&vaultFlag, "vault", "C", "", "Vault root (default $"+RootEnv+" or current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = rootCmd.MarkPersistentFlagDirname("vault")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newStatusCmd())

	// Utility commands
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
