package postservice

import (
	"time"

	"github.com/pkg/errors"
	"github.com/satori/go.uuid"

	"github.com/abustany/back-blog/pkg/poststore"
	"github.com/abustany/back-blog/pkg/types"
)

type Service interface {
	Create(title, content, author string) (types.Post, error)
	Get(id string) (types.Post, error)
	Update(id string, patch types.Post) (types.Post, error)
	Delete(id string) error
	List() ([]types.Post, error)
}

type postService struct {
	store poststore.Store
}

var ErrMissingFields = &userError{errors.New("Title, content, and author are required")}

func New(store poststore.Store) Service {
	return &postService{store}
}

func (s *postService) Create(title, content, author string) (types.Post, error) {
	if title == "" || content == "" || author == "" {
		return types.Post{}, errors.Wrap(ErrMissingFields, "Invalid post data")
	}

	post := types.Post{
		ID:      uuid.NewV4().String(),
		Title:   title,
		Content: content,
		Author:  author,
		Date:    time.Now().Format(types.DateFormat),
	}

	if err := s.store.Add(post); err != nil {
		return types.Post{}, errors.Wrap(err, "Error while adding post to store")
	}

	return post, nil
}

func (s *postService) Get(id string) (types.Post, error) {
	post, err := s.store.Get(id)

	if err == poststore.ErrIDNotFound {
		err = &userError{err}
	}

	return post, errors.Wrap(err, "Error while getting post from store")
}

func (s *postService) Update(id string, patch types.Post) (types.Post, error) {
	patch.ID = id

	post, err := s.store.Update(patch)

	if err == poststore.ErrIDNotFound {
		err = &userError{err}
	}

	return post, errors.Wrap(err, "Error while updating post in store")
}

func (s *postService) Delete(id string) error {
	err := s.store.Delete(id)

	if err == poststore.ErrIDNotFound {
		err = &userError{err}
	}

	return errors.Wrap(err, "Error while deleting post from store")
}

func (s *postService) List() ([]types.Post, error) {
	posts, err := s.store.List()

	if err != nil {
		return nil, errors.Wrap(err, "Error while listing posts")
	}

	return posts, nil
}
