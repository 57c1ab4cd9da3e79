package contentapi

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrContentNotFound indicates a content was not found, or exists but is
	// not owned by the caller. The two cases are deliberately conflated on
	// ownership-scoped paths so callers cannot probe foreign records.
	ErrContentNotFound = errors.New("content not found")

	// ErrUserNotFound indicates a user was not found in the directory
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthorized indicates a credential did not resolve to a user
	ErrUnauthorized = errors.New("credential does not resolve to a user")

	// ErrAuthorMissing indicates a content references an author that no
	// longer exists in the directory (data-integrity violation)
	ErrAuthorMissing = errors.New("content references a missing author")

	// ErrDuplicateID indicates an insert collided with an existing content id
	ErrDuplicateID = errors.New("content id already exists")

	// ErrIDConflict indicates id generation collided twice in a row
	ErrIDConflict = errors.New("could not allocate a unique content id")
)

// ContentError represents an error related to content operations
type ContentError struct {
	ContentID uuid.UUID
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
