package entities

import (
	"errors"
	"fmt"
)

// The error messages below are rendered verbatim to users as the "error"
// field of the JSON output, so their exact wording is part of the CLI
// contract.
//
//nolint:staticcheck,err113 // capitalized, user-facing messages
var (
	// ErrRepositoryNotFound is returned when the repository lookup that
	// resolves the default branch fails.
	ErrRepositoryNotFound = errors.New("Repository not found")

	// ErrContentDecode is returned when a file's base64 payload cannot be
	// decoded, or decodes to bytes that are not valid UTF-8.
	ErrContentDecode = errors.New("Failed to decode file content")
)

// FileNotFoundError is returned when the contents endpoint answers without a
// content field, meaning the path does not name a file on that branch.
type FileNotFoundError struct {
	Path   string
	Branch string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File '%s' not found on branch '%s'", e.Path, e.Branch)
}
