package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"tweetx/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	users := newFakeUserStore(&schema.User{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	posts := newFakePostStore()
	app := newTestApp(users, posts)

	w := doJSON(t, app, "POST", "/post", `{"content":"first post"}`, "a@x.com")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["id"])

	post, err := posts.ByID(context.Background(), resp["id"])
	require.NoError(t, err)
	assert.Equal(t, "Alice", post.Author, "author is a display-name snapshot")
	assert.Equal(t, "a@x.com", post.Email)
	assert.Equal(t, "first post", post.Content)
	assert.False(t, post.Timestamp.IsZero())
}

func TestCreatePostTooLong(t *testing.T) {
	users := newFakeUserStore(&schema.User{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	posts := newFakePostStore()
	app := newTestApp(users, posts)

	body := `{"content":"` + strings.Repeat("x", schema.MaxPostLength+1) + `"}`
	w := doJSON(t, app, "POST", "/post", body, "a@x.com")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, posts.posts)
}

func TestEditPostScope(t *testing.T) {
	post := &schema.Post{
		Author:    "Alice",
		Content:   "original",
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:     "a@x.com",
	}
	posts := newFakePostStore(post)
	app := newTestApp(newFakeUserStore(), posts)

	id := post.ID
	w := doJSON(t, app, "PATCH", "/post?postid="+id.Hex(), `{"content":"edited"}`, "a@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "edited", post.Content)
	assert.True(t, post.Timestamp.After(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	// everything else is untouched
	assert.Equal(t, id, post.ID)
	assert.Equal(t, "Alice", post.Author)
	assert.Equal(t, "a@x.com", post.Email)
}

func TestEditPostOwnerOnly(t *testing.T) {
	post := &schema.Post{Author: "Alice", Content: "original", Email: "a@x.com"}
	posts := newFakePostStore(post)
	app := newTestApp(newFakeUserStore(), posts)

	w := doJSON(t, app, "PATCH", "/post?postid="+post.ID.Hex(), `{"content":"hijacked"}`, "b@x.com")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "original", post.Content)
}

func TestDeletePostOwnerOnly(t *testing.T) {
	post := &schema.Post{Author: "Alice", Content: "original", Email: "a@x.com"}
	posts := newFakePostStore(post)
	app := newTestApp(newFakeUserStore(), posts)

	w := doJSON(t, app, "DELETE", "/post?postid="+post.ID.Hex(), "", "b@x.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, posts.posts, 1)

	w = doJSON(t, app, "DELETE", "/post?postid="+post.ID.Hex(), "", "a@x.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, posts.posts)
}

func TestFeedNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := newFakePostStore(
		&schema.Post{Author: "Alice", Content: "old", Email: "a@x.com", Timestamp: base},
		&schema.Post{Author: "Bob", Content: "new", Email: "b@x.com", Timestamp: base.Add(time.Hour)},
	)
	app := newTestApp(newFakeUserStore(), posts)

	w := doJSON(t, app, "GET", "/feed", "", "a@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	var feed []schema.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 2)
	assert.Equal(t, "new", feed[0].Content)
	assert.Equal(t, "old", feed[1].Content)
}

func TestGetPostsDefaultsToViewer(t *testing.T) {
	posts := newFakePostStore(
		&schema.Post{Author: "Alice", Content: "mine", Email: "a@x.com"},
		&schema.Post{Author: "Bob", Content: "theirs", Email: "b@x.com"},
	)
	app := newTestApp(newFakeUserStore(), posts)

	w := doJSON(t, app, "GET", "/post", "", "a@x.com")
	require.Equal(t, http.StatusOK, w.Code)

	var list []schema.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Content)
}
