// Package config loads vault's configuration.
//
// Configuration comes from two places:
//
//   - The vault's .env file (<vault root>/.env). Process environment
//     variables of the same name take precedence over the file.
//   - Optional user preferences in ~/.config/vault/config.toml.
//
// # .env Keys
//
//   - SOURCES (required): comma-separated source roots. The first root is
//     where "vault add" clones new repositories.
//   - TEMPLATES, ASSETS: paths used by document tooling; loaded and carried
//     but not interpreted by vault itself.
//
// Lines starting with # and blank lines are ignored. The first = separates
// key and value.
//
// # Preferences
//
//	[discover]
//	exclude = ["vendor", "target"]  # skipped in addition to node_modules
//
// # Path Handling
//
// SOURCES entries may be absolute, start with ~, or be relative to the vault
// root. Exclude entries must be plain directory names.
package config
