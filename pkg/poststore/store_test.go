package poststore_test

import (
	"fmt"
	"testing"

	"github.com/abustany/back-blog/pkg/poststore"
	"github.com/abustany/back-blog/pkg/types"
)

func testStore(t *testing.T, storeFactory func() poststore.Store) {
	withStore := func(f func(t *testing.T, store poststore.Store)) func(*testing.T) {
		return func(t *testing.T) {
			f(t, storeFactory())
		}
	}

	t.Run("Add", withStore(testAdd))
	t.Run("Get", withStore(testGet))
	t.Run("Update", withStore(testUpdate))
	t.Run("Delete", withStore(testDelete))
	t.Run("List", withStore(testList))
}

func makePost(idx int) types.Post {
	idxStr := fmt.Sprintf("%04d", idx)

	return types.Post{
		ID:      "ID" + idxStr,
		Title:   "Title " + idxStr,
		Content: "Content " + idxStr,
		Author:  "Author " + idxStr,
		Date:    "2020-01-01",
	}
}

func checkPosts(t *testing.T, store poststore.Store, expected []types.Post) {
	posts, err := store.List()

	if err != nil {
		t.Errorf("List returned an error: %s", err)
		return
	}

	if len(posts) != len(expected) {
		t.Errorf("List returned %d posts, expected %d", len(posts), len(expected))
		return
	}

	for i := range expected {
		if !posts[i].Equal(expected[i]) {
			t.Errorf("List returned an unexpected post at index %d: got %+v, expected %+v", i, posts[i], expected[i])
		}
	}
}

func testAdd(t *testing.T, store poststore.Store) {
	post := makePost(0)

	if err := store.Add(post); err != nil {
		t.Errorf("Add returned an error when adding a new post: %s", err)
	}

	checkPosts(t, store, []types.Post{post})

	if err := store.Add(post); err == nil {
		t.Errorf("Add didn't return an error when adding a post with an existing ID")
	} else if err != poststore.ErrIDAlreadyExists {
		t.Errorf("Add returned an unexpected error when adding a post with an existing ID: %s", err)
	}

	checkPosts(t, store, []types.Post{post})
}

func testGet(t *testing.T, store poststore.Store) {
	if _, err := store.Get("does not exist"); err == nil {
		t.Errorf("Get didn't return an error for a non existing post")
	} else if err != poststore.ErrIDNotFound {
		t.Errorf("Get returned an unexpected error for a non existing post: %s", err)
	}

	post := makePost(0)

	if err := store.Add(post); err != nil {
		t.Fatalf("Add returned an error: %s", err)
	}

	saved, err := store.Get(post.ID)

	if err != nil {
		t.Errorf("Get returned an error for an existing post: %s", err)
	}

	if !saved.Equal(post) {
		t.Errorf("Get returned an unexpected post: got %+v, expected %+v", saved, post)
	}
}

func testUpdate(t *testing.T, store poststore.Store) {
	post := makePost(0)

	if _, err := store.Update(post); err == nil {
		t.Errorf("Update didn't return an error when updating a non existing post")
	} else if err != poststore.ErrIDNotFound {
		t.Errorf("Update returned an unexpected error when updating a non existing post: %s", err)
	}

	checkPosts(t, store, []types.Post{})

	if err := store.Add(post); err != nil {
		t.Fatalf("Add returned an error: %s", err)
	}

	t.Run("Full update", func(t *testing.T) {
		post.Title = "Title 2"
		post.Content = "Content 2"
		post.Author = "Author 2"

		updated, err := store.Update(post)

		if err != nil {
			t.Errorf("Update returned an error when updating an existing post: %s", err)
		}

		if !updated.Equal(post) {
			t.Errorf("Update returned an unexpected post: got %+v, expected %+v", updated, post)
		}

		checkPosts(t, store, []types.Post{post})
	})

	t.Run("Partial update", func(t *testing.T) {
		post.Title = "Title 3"

		updated, err := store.Update(types.Post{ID: post.ID, Title: post.Title})

		if err != nil {
			t.Errorf("Partial update returned an error when updating an existing post: %s", err)
		}

		if !updated.Equal(post) {
			t.Errorf("Partial update returned an unexpected post: got %+v, expected %+v", updated, post)
		}

		checkPosts(t, store, []types.Post{post})
	})

	t.Run("Date is immutable", func(t *testing.T) {
		patch := post
		patch.Date = "1999-12-31"

		updated, err := store.Update(patch)

		if err != nil {
			t.Errorf("Update returned an error: %s", err)
		}

		if updated.Date != post.Date {
			t.Errorf("Update changed the post date: got %s, expected %s", updated.Date, post.Date)
		}

		checkPosts(t, store, []types.Post{post})
	})
}

func testDelete(t *testing.T, store poststore.Store) {
	if err := store.Delete("does not exist"); err == nil {
		t.Errorf("Delete didn't return an error for a non existing post")
	} else if err != poststore.ErrIDNotFound {
		t.Errorf("Delete returned an unexpected error for a non existing post: %s", err)
	}

	posts := []types.Post{makePost(0), makePost(1), makePost(2)}

	for _, p := range posts {
		if err := store.Add(p); err != nil {
			t.Fatalf("Add returned an error: %s", err)
		}
	}

	if err := store.Delete(posts[1].ID); err != nil {
		t.Errorf("Delete returned an error for an existing post: %s", err)
	}

	if _, err := store.Get(posts[1].ID); err != poststore.ErrIDNotFound {
		t.Errorf("Get after Delete didn't return ErrIDNotFound: %v", err)
	}

	// Deleting the middle post should not disturb the order of the others
	checkPosts(t, store, []types.Post{posts[0], posts[2]})

	if err := store.Delete(posts[1].ID); err != poststore.ErrIDNotFound {
		t.Errorf("Deleting a post twice didn't return ErrIDNotFound: %v", err)
	}

	checkPosts(t, store, []types.Post{posts[0], posts[2]})
}

func testList(t *testing.T, store poststore.Store) {
	t.Run("Empty store", func(t *testing.T) {
		posts, err := store.List()

		if err != nil {
			t.Errorf("List on an empty store returned an error: %s", err)
		}

		if len(posts) != 0 {
			t.Error("List on an empty store didn't return an empty list of posts")
		}
	})

	const nPosts = 100

	for i := 0; i < nPosts; i++ {
		if err := store.Add(makePost(i)); err != nil {
			t.Fatalf("Add returned an error: %s", err)
		}
	}

	t.Run("Insertion order", func(t *testing.T) {
		posts, err := store.List()

		if err != nil {
			t.Errorf("List returned an error: %s", err)
		}

		if len(posts) != nPosts {
			t.Fatalf("List returned %d posts, expected %d", len(posts), nPosts)
		}

		for i := 0; i < nPosts; i++ {
			expected := makePost(i)

			if !posts[i].Equal(expected) {
				t.Errorf("List returned an unexpected post at index %d: got %+v, expected %+v", i, posts[i], expected)
			}
		}
	})
}
