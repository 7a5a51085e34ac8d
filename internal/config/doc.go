// Package config loads application configuration from the environment
// and an optional YAML file, and resolves the filesystem paths the
// server writes to.
//
// The export directory is deliberately not part of Config: it is a
// fixed well-known location under the host temp area, resolved by
// GetPaths. Components that need a different directory (tests) receive
// one explicitly at construction instead of going through this package.
package config
