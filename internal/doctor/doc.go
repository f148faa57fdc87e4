// Package doctor provides diagnostic and repair functionality for a vault.
//
// The doctor package detects and optionally repairs issues including:
//
//   - Tool issues: git missing from PATH.
//
//   - Configuration issues: source roots that don't exist or aren't
//     directories, and a vault root that can't be written to.
//
//   - Link issues: discovered repositories without a link in the vault, and
//     entries at a link path that don't point at their repository.
//
// # Usage
//
//	err := doctor.Run(ctx, cfg, v, false)  // check only
//	err := doctor.Run(ctx, cfg, v, true)   // check and create missing links
//
// # Issue Categories
//
// Issues are grouped into three categories:
//
//   - [CategoryTools]: external tools vault depends on
//   - [CategoryConfig]: .env and filesystem layout
//   - [CategoryLinks]: links between the vault and its repositories
//
// Only missing links are repaired. A mismatched entry may be user data, so
// it is reported and left alone.
package doctor
