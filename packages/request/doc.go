// Package request turns raw CLI option values into a validated request
// description.
//
// It provides:
//   - Header and query parsing with last-write-wins overwrite warnings
//   - Mutually exclusive body source selection (form, JSON, file)
//   - Eager file body reading so failures surface before any network I/O
//   - Timeout and URL validation
package request
