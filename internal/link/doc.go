// Package link creates and inspects the directory links that make each
// repository appear inside the vault.
//
// Link creation is platform specific: Windows uses directory junctions, which
// need no elevated privilege, while every other platform uses symbolic links.
// The difference is hidden behind [Creator]; [Native] returns the creator for
// the running platform and the rest of vault never branches on GOOS.
//
// [Reconciler.Reconcile] is idempotent. An existing entry at the link path is
// reported as [AlreadyPresent] and left untouched, whatever it points to.
// [Reconciler.Inspect] classifies an entry without modifying it so status and
// diagnostics can surface links that point somewhere unexpected.
package link
