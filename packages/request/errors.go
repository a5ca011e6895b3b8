package request

import "errors"

// Fatal resolution failures. All of them abort before any network I/O;
// callers match with errors.Is to choose an exit code.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrConflictingOptions = errors.New("conflicting options")
	ErrFileAccess         = errors.New("file access")
)
