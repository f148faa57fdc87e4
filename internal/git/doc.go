// Package git provides the repository-level operations vault needs.
//
// Mutating operations shell out to the git CLI through [cmd.StreamContext]
// so that user configuration (SSH keys, credential helpers, hooks) applies.
// Read-only inspection of a working copy uses go-git and never starts a
// process.
//
// # Discovery
//
//   - [FindGitRepos]: Walk a source root and return every repository root
//     beneath it without descending into found repositories
//   - [RelativeMapping]: The path of a repository relative to its source root
//
// # Remote Identifiers
//
//   - [ParseRemote]: Split an SSH or HTTP(S) remote into organization and
//     project path
//
// # Working Copies
//
//   - [CLI.Synchronize]: Pull the latest changes into a working copy
//   - [CLI.Clone]: Create a new working copy from a remote
//   - [CurrentBranch], [OriginURL]: Inspect a working copy
package git
