package poststore

import (
	"github.com/pkg/errors"

	"github.com/abustany/back-blog/pkg/types"
)

type Store interface {
	// Add adds a post to the store. If a post with this ID already exists, it
	// returns ErrIDAlreadyExists.
	Add(post types.Post) error

	// Get returns the post with the given ID. If no such post exists, it
	// returns ErrIDNotFound.
	Get(id string) (types.Post, error)

	// Update merges the given post into the stored one with the same ID. Empty
	// Title, Content or Author fields keep their stored values; the ID and
	// Date are never taken from the argument. It returns the merged post, or
	// ErrIDNotFound if no post with this ID exists.
	Update(post types.Post) (types.Post, error)

	// Delete removes the post with the given ID, preserving the relative
	// order of the remaining posts. If no such post exists, it returns
	// ErrIDNotFound.
	Delete(id string) error

	// List returns all posts in insertion order.
	List() ([]types.Post, error)
}

var ErrIDAlreadyExists = errors.New("A post with this ID already exists")
var ErrIDNotFound = errors.New("A post with this ID cannot be found")
