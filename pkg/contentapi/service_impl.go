package contentapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pagination defaults, also applied when a request carries values below 1.
const (
	DefaultPageNum  = 1
	DefaultPageTake = 12
)

// service implements the Service interface
type service struct {
	store    ContentStore
	users    UserDirectory
	now      func() time.Time
	newID    func() uuid.UUID
	collator *collate.Collator
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithStore sets the content store for the service
func WithStore(store ContentStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithUsers sets the user directory for the service
func WithUsers(users UserDirectory) Option {
	return func(s *service) {
		s.users = users
	}
}

// WithClock overrides the wall clock used for createdAt stamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides the content id generator
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// WithCollator overrides the collator used for the title-asc sort order
func WithCollator(c *collate.Collator) Option {
	return func(s *service) {
		s.collator = c
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		now:      time.Now,
		newID:    uuid.New,
		collator: collate.New(language.Und),
	}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("content store is required")
	}
	if s.users == nil {
		return nil, fmt.Errorf("user directory is required")
	}

	return s, nil
}

// Read operations

func (s *service) CountContent(ctx context.Context, query string) (int, error) {
	contents, err := s.store.All(ctx)
	if err != nil {
		return 0, err
	}

	if query == "" {
		return len(contents), nil
	}

	count := 0
	for _, content := range contents {
		if strings.Contains(content.Title, query) {
			count++
		}
	}
	return count, nil
}

func (s *service) ListContent(ctx context.Context, req ListContentRequest) ([]ContentView, error) {
	contents, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	// Filter, then sort, then paginate, in that order.
	var filtered []Content
	for _, content := range contents {
		if req.Query == "" || strings.Contains(content.Title, req.Query) {
			filtered = append(filtered, content)
		}
	}

	// Stable sorts so insertion order breaks ties.
	switch req.Sort {
	case SortTitleAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return s.collator.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	pageNum := req.PageNum
	if pageNum < 1 {
		pageNum = DefaultPageNum
	}
	pageTake := req.PageTake
	if pageTake < 1 {
		pageTake = DefaultPageTake
	}

	startAt := (pageNum - 1) * pageTake
	endAt := pageNum * pageTake
	if startAt > len(filtered) {
		startAt = len(filtered)
	}
	if endAt > len(filtered) {
		endAt = len(filtered)
	}

	views := make([]ContentView, 0, endAt-startAt)
	for _, content := range filtered[startAt:endAt] {
		author, err := s.users.UserByID(ctx, content.AuthorID)
		if err != nil {
			// A broken author reference drops the record from the page
			// rather than failing the whole listing.
			continue
		}
		views = append(views, NewContentView(content, *author))
	}
	return views, nil
}

func (s *service) GetContent(ctx context.Context, id uuid.UUID) (*ContentView, error) {
	content, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.users.UserByID(ctx, content.AuthorID)
	if err != nil {
		return nil, ErrAuthorMissing
	}

	view := NewContentView(*content, *author)
	return &view, nil
}

func (s *service) GetOwnedContent(ctx context.Context, credential string, id uuid.UUID) (*ContentView, error) {
	user, err := s.users.UserByNickname(ctx, credential)
	if err != nil {
		return nil, ErrUnauthorized
	}

	content, err := s.findOwned(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}

	// The resolved user is the author; no extra lookup needed.
	view := NewContentView(*content, *user)
	return &view, nil
}

// Write operations

func (s *service) CreateContent(ctx context.Context, req CreateContentRequest) (*Content, error) {
	user, err := s.users.UserByNickname(ctx, req.Credential)
	if err != nil {
		return nil, ErrUnauthorized
	}

	content := &Content{
		ID:        s.newID(),
		Title:     req.Title,
		Body:      req.Body,
		Thumbnail: req.Thumbnail,
		CreatedAt: s.now(),
		AuthorID:  user.ID,
	}

	err = s.store.Append(ctx, content)
	if errors.Is(err, ErrDuplicateID) {
		// A v4 collision is practically impossible; one fresh id before
		// giving up.
		content.ID = s.newID()
		err = s.store.Append(ctx, content)
		if errors.Is(err, ErrDuplicateID) {
			err = ErrIDConflict
		}
	}
	if err != nil {
		return nil, &ContentError{
			ContentID: content.ID,
			Op:        "create",
			Err:       err,
		}
	}

	return content, nil
}

func (s *service) UpdateContent(ctx context.Context, req UpdateContentRequest) (*ContentView, error) {
	user, err := s.users.UserByNickname(ctx, req.Credential)
	if err != nil {
		// This path reports a bad credential as not-found: callers cannot
		// distinguish a foreign credential from a missing record.
		return nil, ErrContentNotFound
	}

	content, err := s.findOwned(ctx, req.ID, user.ID)
	if err != nil {
		return nil, err
	}

	merged := *content
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Body != nil {
		merged.Body = *req.Body
	}
	if req.Thumbnail != nil {
		merged.Thumbnail = *req.Thumbnail
	}

	if err := s.store.ReplaceByID(ctx, req.ID, user.ID, &merged); err != nil {
		return nil, err
	}

	view := NewContentView(merged, *user)
	return &view, nil
}

func (s *service) DeleteContent(ctx context.Context, credential string, id uuid.UUID) error {
	user, err := s.users.UserByNickname(ctx, credential)
	if err != nil {
		// Same not-found ambiguity as UpdateContent.
		return ErrContentNotFound
	}

	return s.store.RemoveByID(ctx, id, user.ID)
}

// findByID scans the store for the first record with a matching id.
func (s *service) findByID(ctx context.Context, id uuid.UUID) (*Content, error) {
	contents, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contents {
		if contents[i].ID == id {
			return &contents[i], nil
		}
	}
	return nil, ErrContentNotFound
}

// findOwned scans the store for the first record matching both id and
// authorID.
func (s *service) findOwned(ctx context.Context, id, authorID uuid.UUID) (*Content, error) {
	contents, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contents {
		if contents[i].ID == id && contents[i].AuthorID == authorID {
			return &contents[i], nil
		}
	}
	return nil, ErrContentNotFound
}
