package contentapi

import (
	"context"

	"github.com/google/uuid"
)

// ContentStore owns the mutable, ordered collection of content records for
// the process lifetime. It provides no filtering or sorting; that is the
// service's job. All mutations are visible to subsequent All calls from any
// caller within the same process.
type ContentStore interface {
	// All returns a snapshot of the current records in storage order
	// (insertion order, not guaranteed sorted).
	All(ctx context.Context) ([]Content, error)

	// Append inserts at the end. It fails with ErrDuplicateID if the
	// content id already exists.
	Append(ctx context.Context, content *Content) error

	// ReplaceByID overwrites the first record matching both id and authorID
	// in place, position unchanged. It fails with ErrContentNotFound if no
	// record matches.
	ReplaceByID(ctx context.Context, id, authorID uuid.UUID, content *Content) error

	// RemoveByID deletes the first record matching both id and authorID.
	// It fails with ErrContentNotFound if no record matches.
	RemoveByID(ctx context.Context, id, authorID uuid.UUID) error
}

// UserDirectory resolves content owners. The directory is the credential
// seam: services resolve raw Authorization values only through
// UserByNickname, so a real auth scheme can replace the directory without
// touching service logic.
type UserDirectory interface {
	UserByID(ctx context.Context, id uuid.UUID) (*User, error)
	UserByNickname(ctx context.Context, nickname string) (*User, error)
}
