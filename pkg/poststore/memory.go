package poststore

import (
	"sync"

	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/abustany/back-blog/pkg/types"
)

type memoryPostStore struct {
	sync.RWMutex
	posts map[string]types.Post

	// order holds the post IDs in insertion order, so that List can return
	// posts oldest first and Delete can remove an ID without disturbing the
	// order of the others.
	order *doublylinkedlist.List
}

func NewMemoryPostStore() (Store, error) {
	return &memoryPostStore{
		posts: map[string]types.Post{},
		order: doublylinkedlist.New(),
	}, nil
}

func (s *memoryPostStore) Add(post types.Post) error {
	s.Lock()
	defer s.Unlock()

	if _, exists := s.posts[post.ID]; exists {
		return ErrIDAlreadyExists
	}

	s.posts[post.ID] = post
	s.order.Add(post.ID)

	return nil
}

func (s *memoryPostStore) Get(id string) (types.Post, error) {
	s.RLock()
	defer s.RUnlock()

	post, exists := s.posts[id]

	if !exists {
		return types.Post{}, ErrIDNotFound
	}

	return post, nil
}

func (s *memoryPostStore) Update(post types.Post) (types.Post, error) {
	s.Lock()
	defer s.Unlock()

	oldPost, exists := s.posts[post.ID]

	if !exists {
		return types.Post{}, ErrIDNotFound
	}

	merged := oldPost

	if post.Title != "" {
		merged.Title = post.Title
	}

	if post.Content != "" {
		merged.Content = post.Content
	}

	if post.Author != "" {
		merged.Author = post.Author
	}

	s.posts[post.ID] = merged

	return merged, nil
}

func (s *memoryPostStore) Delete(id string) error {
	s.Lock()
	defer s.Unlock()

	if _, exists := s.posts[id]; !exists {
		return ErrIDNotFound
	}

	delete(s.posts, id)

	for it := s.order.Iterator(); it.Next(); {
		if it.Value().(string) == id {
			s.order.Remove(it.Index())
			break
		}
	}

	return nil
}

func (s *memoryPostStore) List() ([]types.Post, error) {
	s.RLock()
	defer s.RUnlock()

	posts := make([]types.Post, 0, s.order.Size())

	for it := s.order.Iterator(); it.Next(); {
		posts = append(posts, s.posts[it.Value().(string)])
	}

	return posts, nil
}
