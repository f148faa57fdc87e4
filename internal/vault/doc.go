// Package vault implements the user-facing operations: pulling every
// discovered repository and linking it into the vault, adding a single
// repository from a remote, and reporting which repositories are linked.
//
// A [Vault] is built from an explicit [Config] plus the two collaborators it
// drives, a [VCS] for working copies and a [Linker] for directory links.
// There is no package-level state, so tests supply synthetic roots and fake
// collaborators.
//
// # Failure Isolation
//
// Pull never stops because one repository failed: synchronize and link
// failures are reported per repository and counted in the summary. Add is
// all-or-nothing: parse, clone and link failures are returned as errors.
// Status never modifies the filesystem.
package vault
