// Package manifest loads project configuration from Cargo.toml.
//
// The tool's per-project defaults live in the [package.metadata.ndk] table:
//
//	[package.metadata.ndk]
//	targets = ["armeabi-v7a", "arm64-v8a"]
//	platform = 21
//
// Both keys are optional. Resolution folds in the built-in defaults so a
// loaded Config always carries a non-empty target list and a positive
// platform level.
package manifest
