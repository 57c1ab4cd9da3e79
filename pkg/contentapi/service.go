package contentapi

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the content query, pagination, and ownership rules.
type Service interface {
	// CountContent returns the total record count, or the count of records
	// whose title contains query as a case-sensitive substring when query
	// is non-empty. Public.
	CountContent(ctx context.Context, query string) (int, error)

	// ListContent filters, sorts, paginates, and projects content to views
	// with the author resolved per record. Public; an empty result is
	// valid output.
	ListContent(ctx context.Context, req ListContentRequest) ([]ContentView, error)

	// GetContent retrieves a single content view by id. Public.
	GetContent(ctx context.Context, id uuid.UUID) (*ContentView, error)

	// GetOwnedContent retrieves a content view only if the resolved
	// credential owns the record.
	GetOwnedContent(ctx context.Context, credential string, id uuid.UUID) (*ContentView, error)

	// CreateContent creates a new record owned by the resolved credential.
	// It returns the raw Content; the transport boundary decides projection.
	CreateContent(ctx context.Context, req CreateContentRequest) (*Content, error)

	// UpdateContent merges a partial patch into an owned record.
	UpdateContent(ctx context.Context, req UpdateContentRequest) (*ContentView, error)

	// DeleteContent removes an owned record.
	DeleteContent(ctx context.Context, credential string, id uuid.UUID) error
}
