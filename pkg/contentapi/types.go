package contentapi

import (
	"time"

	"github.com/google/uuid"
)

// SortOrder selects the ordering applied by ListContent.
type SortOrder string

// Sort order constants. Any other value falls back to SortCreatedAtDesc.
const (
	SortTitleAsc      SortOrder = "title-asc"
	SortCreatedAtDesc SortOrder = "createdAt-desc"
)

// Content represents a single piece of published material.
//
// JSON field names are camelCase: the wire format is fixed by the existing
// API contract. ID, CreatedAt, and AuthorID are assigned at creation and
// immutable afterward.
type Content struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  uuid.UUID `json:"authorId"`
}

// User represents a content owner. Users are static seed data; the core
// never creates, mutates, or deletes them.
type User struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	ImgURL   string    `json:"imgUrl"`
}

// ContentView is the read-only projection of a Content with the author
// embedded in place of the raw author id. Built on every read path, never
// stored.
type ContentView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"createdAt"`
	Author    User      `json:"author"`
}

// NewContentView projects a content record with its resolved author.
func NewContentView(content Content, author User) ContentView {
	return ContentView{
		ID:        content.ID,
		Title:     content.Title,
		Body:      content.Body,
		Thumbnail: content.Thumbnail,
		CreatedAt: content.CreatedAt,
		Author:    author,
	}
}
