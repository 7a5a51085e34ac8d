// Package exporter converts arrays of uniform records to CSV text and
// persists the result under a single export directory.
//
// Encode is a pure transform with no I/O and no failure path; Writer
// owns directory creation, the final file path, and the human-facing
// size label. Filenames are uniquified per export, so the writer never
// needs to coordinate with concurrent writers.
package exporter
