// Package memory provides an in-memory, ordered content store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dulee/content-api/pkg/contentapi"
)

// Store implements contentapi.ContentStore using an ordered in-memory slice.
// A single RWMutex guards the collection; every mutation runs its find and
// write under the write lock, and reads hand out snapshot copies.
type Store struct {
	mu       sync.RWMutex
	contents []contentapi.Content
}

// New creates a new empty in-memory content store
func New() *Store {
	return &Store{}
}

func (s *Store) All(ctx context.Context) ([]contentapi.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modifications
	snapshot := make([]contentapi.Content, len(s.contents))
	copy(snapshot, s.contents)
	return snapshot, nil
}

func (s *Store) Append(ctx context.Context, content *contentapi.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contents {
		if s.contents[i].ID == content.ID {
			return contentapi.ErrDuplicateID
		}
	}

	s.contents = append(s.contents, *content)
	return nil
}

func (s *Store) ReplaceByID(ctx context.Context, id, authorID uuid.UUID, content *contentapi.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contents {
		if s.contents[i].ID == id && s.contents[i].AuthorID == authorID {
			// Overwrite in place; position unchanged.
			s.contents[i] = *content
			return nil
		}
	}
	return contentapi.ErrContentNotFound
}

func (s *Store) RemoveByID(ctx context.Context, id, authorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contents {
		if s.contents[i].ID == id && s.contents[i].AuthorID == authorID {
			s.contents = append(s.contents[:i], s.contents[i+1:]...)
			return nil
		}
	}
	return contentapi.ErrContentNotFound
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contents)
}
