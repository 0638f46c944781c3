// Package session manages the single browser cookie that identifies the
// logged-in user: its name is "email" and its value is the user's email.
package session

import (
	"net/http"
	"time"
)

// CookieName is the name of the session cookie.
const CookieName = "email"

// DefaultTTL matches the 7-day login expiry.
const DefaultTTL = 7 * 24 * time.Hour

// Set writes the session cookie for email with the given lifetime.
func Set(w http.ResponseWriter, email string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:    CookieName,
		Value:   email,
		Path:    "/",
		Expires: time.Now().Add(ttl),
	})
}

// Clear removes the session cookie by writing it back with an
// already-expired date.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    CookieName,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
	})
}

// Get returns the email held by the session cookie. A missing or empty
// cookie means no session, not an error.
func Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
