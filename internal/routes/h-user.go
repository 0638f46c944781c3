package routes

import (
	"errors"
	"net/http"

	"tweetx/internal/db"
	"tweetx/internal/schema"
	"tweetx/internal/session"
)

func (a *App) usersHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := session.Get(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	users, err := a.users.All(r.Context(), email)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to list users")
		http.Error(w, "unable to get users", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type profileResponse struct {
	User      *schema.User  `json:"user"`
	Posts     []schema.Post `json:"posts"`
	Followers []schema.User `json:"followers"`
	Following []schema.User `json:"following"`
}

func (a *App) profileHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := session.Get(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	user, err := a.users.FindByEmail(r.Context(), email)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to fetch profile")
		http.Error(w, "unable to get profile", http.StatusInternalServerError)
		return
	}

	posts, err := a.posts.ByEmail(r.Context(), email)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to fetch profile posts")
		http.Error(w, "unable to get profile", http.StatusInternalServerError)
		return
	}

	followers, err := a.users.FollowersOf(r.Context(), email)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to fetch followers")
		http.Error(w, "unable to get profile", http.StatusInternalServerError)
		return
	}

	following, err := a.users.FollowingOf(r.Context(), email)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to fetch following")
		http.Error(w, "unable to get profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		User:      user,
		Posts:     posts,
		Followers: followers,
		Following: following,
	})
}

func (a *App) followHandler(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := session.Get(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	targetEmail := r.URL.Query().Get("email")

	if actorEmail == targetEmail {
		http.Error(w, "cannot follow/unfollow yourself", http.StatusBadRequest)
		return
	}

	// Check that the target exists before touching either document.
	if _, err := a.users.FindByEmail(r.Context(), targetEmail); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		a.log.Error().Err(err).Msg("failed to look up target user")
		http.Error(w, "failed to follow", http.StatusInternalServerError)
		return
	}

	var err error
	if r.URL.Path == FOLLOW_ROUTE {
		err = a.users.Follow(r.Context(), actorEmail, targetEmail)
	} else {
		err = a.users.Unfollow(r.Context(), actorEmail, targetEmail)
	}
	if errors.Is(err, db.ErrSelfFollow) {
		http.Error(w, "cannot follow/unfollow yourself", http.StatusBadRequest)
		return
	}
	// a session cookie can name an email with no user record behind it; the
	// store refuses the pair rather than writing a one-sided entry
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to update relationship")
		http.Error(w, "failed to follow", http.StatusInternalServerError)
		return
	}

	if r.URL.Path == FOLLOW_ROUTE {
		writeJSON(w, http.StatusOK, map[string]string{"msg": "followed successfully"})
	} else {
		writeJSON(w, http.StatusOK, map[string]string{"msg": "unfollowed successfully"})
	}
}
