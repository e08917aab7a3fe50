// Package config loads, validates, and normalizes scriptforge configuration.
//
// Configuration comes from a TOML file (default ~/.config/scriptforge/config.toml,
// or scriptforge.toml in the working directory), with defaults applied for any
// absent field so a missing file is never an error. Path fields are expanded
// (~ and relative segments) during normalization, and Validate rejects
// configurations whose bounds are inconsistent.
package config
