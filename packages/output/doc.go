// Package output renders the exchanged response, warnings and errors to
// the terminal.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Each formatter implements the Formatter interface.
package output
