package exporter

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// DefaultBaseName is used when the caller supplies no filename
const DefaultBaseName = "output"

var baseNamePattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeBaseName replaces every character outside [a-zA-Z0-9_-] with
// an underscore. An empty base falls back to DefaultBaseName.
func SanitizeBaseName(base string) string {
	if base == "" {
		base = DefaultBaseName
	}
	return baseNamePattern.ReplaceAllString(base, "_")
}

// UniqueFilename derives a collision-resistant export filename from a
// caller-supplied base: the sanitized base, an underscore, a random
// 128-bit token, and the .csv extension. Two calls never produce the
// same name, so concurrent exports with identical bases cannot clash.
func UniqueFilename(base string) string {
	return fmt.Sprintf("%s_%s.csv", SanitizeBaseName(base), uuid.NewString())
}
