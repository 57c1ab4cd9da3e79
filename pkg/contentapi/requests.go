package contentapi

import "github.com/google/uuid"

// Request DTOs

// ListContentRequest contains parameters for the paginated, filtered,
// sorted content listing. PageNum and PageTake below 1 fall back to
// DefaultPageNum and DefaultPageTake.
type ListContentRequest struct {
	PageNum  int
	PageTake int
	Query    string
	Sort     SortOrder
}

// CreateContentRequest contains parameters for creating new content.
// Credential is the raw Authorization header value.
type CreateContentRequest struct {
	Credential string
	Title      string
	Body       string
	Thumbnail  string
}

// UpdateContentRequest contains parameters for a partial content update.
// Nil fields retain their prior values; id, createdAt, and authorId are
// never overwritten by a patch.
type UpdateContentRequest struct {
	Credential string
	ID         uuid.UUID
	Title      *string
	Body       *string
	Thumbnail  *string
}
