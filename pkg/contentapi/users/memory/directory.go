// Package memory provides a static, in-memory user directory.
package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dulee/content-api/pkg/contentapi"
)

// Directory implements contentapi.UserDirectory over a fixed user set.
// Users are seed data: the directory is never mutated after construction,
// so lookups need no locking.
type Directory struct {
	users []contentapi.User
}

// New creates a directory holding the given users
func New(users ...contentapi.User) *Directory {
	d := &Directory{users: make([]contentapi.User, len(users))}
	copy(d.users, users)
	return d
}

func (d *Directory) UserByID(ctx context.Context, id uuid.UUID) (*contentapi.User, error) {
	for i := range d.users {
		if d.users[i].ID == id {
			user := d.users[i]
			return &user, nil
		}
	}
	return nil, contentapi.ErrUserNotFound
}

func (d *Directory) UserByNickname(ctx context.Context, nickname string) (*contentapi.User, error) {
	for i := range d.users {
		if d.users[i].Nickname == nickname {
			user := d.users[i]
			return &user, nil
		}
	}
	return nil, contentapi.ErrUserNotFound
}
