// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Commands are always started from an argument vector, never through a shell
// string, so remote identifiers and paths are passed to the child process
// verbatim. Stderr is captured and used as the error message when a command
// fails, making failures more informative for users.
//
// # Usage
//
//	err := cmd.RunContext(ctx, repoDir, "git", "status")
//
//	// For commands that return output:
//	out, err := cmd.OutputContext(ctx, "", "git", "--version")
//
//	// For commands whose output the user should see as it happens:
//	diag, err := cmd.StreamContext(ctx, repoDir, os.Stderr, "git", "pull")
//
// Every invocation is logged through the context logger when verbose mode
// is enabled, including the time it took.
//
// # Design Notes
//
// vault shells out to the git CLI for mutating operations rather than using
// a Go library. This keeps compatibility with user configuration (SSH keys,
// credential helpers, hooks) that a library would not honor.
package cmd
