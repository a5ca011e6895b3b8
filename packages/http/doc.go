// Package http performs the one-shot request/response exchange for hit.
//
// It wraps the standard library's http package with:
//   - Header defaulting driven by the active body source
//   - Query serialization that preserves CLI insertion order
//   - Per-request timeouts
//   - Full response buffering with ordered header capture
package http
