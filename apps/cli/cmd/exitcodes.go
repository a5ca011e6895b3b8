package cmd

// Exit codes for the hit CLI
const (
	// ExitSuccess indicates a completed exchange, whatever the HTTP status
	ExitSuccess = 0

	// ExitError indicates an unclassified failure
	ExitError = 1

	// ExitFileError indicates an unreadable body file
	ExitFileError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
