// Package config provides the Atlas CLI configuration model and decoder.
//
// This package defines the configuration document and how it is read:
//
//   - types.go: Config, Profile and AuthType
//   - decode.go: Parse, the TOML to Config transform
//   - errors.go: DecodeError and its kinds
//   - loader.go: config file location and loading
//
// A document has five fixed top-level settings (version,
// local_deployment_image, mongosh_path, telemetry_enabled,
// skip_update_check). Every other top-level key is a profile:
//
//	version = 2
//	telemetry_enabled = true
//
//	profile_1 = { auth_type = "user_account", org_id = "...", output = "json" }
//
//	[profile_2]
//	auth_type = "api_keys"
//
// Optional values are pointers; nil means the key was absent.
package config
