package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tweetx/internal/db"
	"tweetx/internal/schema"
	"tweetx/internal/session"
)

func (a *App) feedHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := a.posts.All(r.Context())
	if err != nil {
		a.log.Error().Err(err).Msg("failed to get feed")
		http.Error(w, "failed to get feed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (a *App) postHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := session.Get(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case "POST":
		a.createPost(w, r, email)
	case "GET":
		a.getPosts(w, r, email)
	case "PATCH":
		a.editPost(w, r, email)
	case "DELETE":
		a.deletePost(w, r, email)
	}
}

func (a *App) createPost(w http.ResponseWriter, r *http.Request, email string) {
	var body schema.PostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The author field is a display-name snapshot, so the user record is
	// needed once at creation time.
	user, err := a.users.FindByEmail(r.Context(), email)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to look up author")
		http.Error(w, "failed to create post", http.StatusInternalServerError)
		return
	}

	post := &schema.Post{
		Author:    user.Name,
		Content:   body.Content,
		Timestamp: time.Now().UTC(),
		Email:     email,
	}

	id, err := a.posts.Insert(r.Context(), post)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to create post")
		http.Error(w, "failed to create post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":  id.Hex(),
		"msg": "post created successfully",
	})
}

func (a *App) getPosts(w http.ResponseWriter, r *http.Request, email string) {
	owner := r.URL.Query().Get("email")
	if owner == "" {
		owner = email
	}

	posts, err := a.posts.ByEmail(r.Context(), owner)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to get posts")
		http.Error(w, "unable to get posts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (a *App) editPost(w http.ResponseWriter, r *http.Request, email string) {
	id := r.URL.Query().Get("postid")

	var body schema.PostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := a.posts.ByID(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to fetch post")
		http.Error(w, "unable to update post", http.StatusInternalServerError)
		return
	}
	if post.Email != email {
		http.Error(w, "only the author may edit a post", http.StatusForbidden)
		return
	}

	if err := a.posts.UpdateContent(r.Context(), id, body.Content, time.Now().UTC()); err != nil {
		a.log.Error().Err(err).Msg("failed to update post")
		http.Error(w, "unable to update post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "post updated successfully"})
}

func (a *App) deletePost(w http.ResponseWriter, r *http.Request, email string) {
	id := r.URL.Query().Get("postid")

	post, err := a.posts.ByID(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to fetch post")
		http.Error(w, "unable to delete post", http.StatusInternalServerError)
		return
	}
	if post.Email != email {
		http.Error(w, "only the author may delete a post", http.StatusForbidden)
		return
	}

	if err := a.posts.Delete(r.Context(), id); err != nil {
		a.log.Error().Err(err).Msg("failed to delete post")
		http.Error(w, "unable to delete post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "post deleted successfully"})
}
