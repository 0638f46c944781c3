package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweetx/internal/auth"
	"tweetx/internal/db"
	"tweetx/internal/schema"
	"tweetx/internal/session"
)

func (a *App) signupHandler(w http.ResponseWriter, r *http.Request) {
	var body schema.SignupBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := &schema.User{
		Name:      body.Name,
		Email:     body.Email,
		Password:  body.Password,
		Followers: []string{},
		Following: []string{},
	}

	_, err := a.users.Insert(r.Context(), user)
	if errors.Is(err, db.ErrEmailExists) {
		http.Error(w, "email already exists", http.StatusConflict)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to create user")
		http.Error(w, "failed to create account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"msg": "account created successfully for " + user.Email,
	})
}

func (a *App) loginHandler(w http.ResponseWriter, r *http.Request) {
	var body schema.LoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := a.users.FindByEmail(r.Context(), body.Email)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		a.log.Error().Err(err).Msg("failed to look up user")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if err := auth.VerifyCredentials(user, body.Password); err != nil {
		if errors.Is(err, auth.ErrEmailNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusUnauthorized)
		}
		return
	}

	session.Set(w, user.Email, a.sessionTTL)
	writeJSON(w, http.StatusOK, map[string]string{
		"msg":      "login successful",
		"redirect": auth.HomeRoute,
	})
}

func (a *App) logoutHandler(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	writeJSON(w, http.StatusOK, map[string]string{
		"msg":      "logged out",
		"redirect": auth.LoginRoute,
	})
}

// forgotPasswordHandler is phase one: verify the email exists and hand back
// the user's document id for the reset phase. Knowing the email is the only
// proof of identity required here.
func (a *App) forgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var body schema.ForgotPasswordBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := a.users.FindByEmail(r.Context(), body.Email)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "email does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to verify email")
		http.Error(w, "failed to verify email", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":  user.ID.Hex(),
		"msg": "email verified, please reset your password",
	})
}

// resetPasswordHandler is phase two: overwrite the stored password for the
// user id obtained in phase one.
func (a *App) resetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var body schema.ResetPasswordBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := body.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// the id must resolve to a real user before anything is overwritten
	if _, err := a.users.FindByID(r.Context(), body.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		a.log.Error().Err(err).Msg("failed to look up user")
		http.Error(w, "failed to reset password", http.StatusInternalServerError)
		return
	}

	err := a.users.UpdatePassword(r.Context(), body.ID, body.Password)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to reset password")
		http.Error(w, "failed to reset password", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"msg":      "password reset successful, please log in with new credentials",
		"redirect": auth.LoginRoute,
	})
}
