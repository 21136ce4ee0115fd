// Package confloader provides layered access to raw configuration keys.
//
// It wraps koanf to read the Atlas CLI TOML file as a generic key tree
// and to overlay environment variables on top of it. Typed decoding is
// done by the config package; this package answers "what is the
// effective value of key X" questions.
//
// Priority (highest to lowest):
//
//  1. Environment variables (MONGODB_ATLAS_* by default)
//  2. Configuration file
//
// Watcher reports changes to configuration files and coalesces the bursts
// of events editors produce when saving.
package confloader
