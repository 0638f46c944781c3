// Package auth holds the route gate and the credential check.
//
// The gate decides, for every request, whether the viewer may see the
// requested route: routes outside the public set require a session, and a
// logged-in viewer is bounced off the login screen. The decision is
// re-evaluated on every request; nothing protected is served before it.
package auth

import (
	"errors"

	"tweetx/internal/schema"
)

var (
	ErrEmailNotFound    = errors.New("email does not exist")
	ErrPasswordMismatch = errors.New("password does not match")
)

// Routes the gate treats specially.
const (
	LoginRoute  = "/auth/login"
	SignupRoute = "/auth/signup"
	ForgotRoute = "/auth/forgot-password"
	HomeRoute   = "/feed"
)

// publicRoutes are reachable without a session.
var publicRoutes = map[string]bool{
	LoginRoute:  true,
	SignupRoute: true,
	ForgotRoute: true,
}

// Decision is the outcome of evaluating a route against session state.
type Decision int

const (
	// Allow serves the route as requested.
	Allow Decision = iota
	// RedirectLogin sends the viewer to the login route.
	RedirectLogin
	// RedirectHome sends an already-authenticated viewer to the feed.
	RedirectHome
)

// IsPublic reports whether route is reachable without a session.
func IsPublic(route string) bool {
	return publicRoutes[route]
}

// Decide evaluates a route against the presence of a session.
//
// No session on a protected route redirects to login; a session on the
// login route redirects to the feed; everything else is served.
func Decide(route string, hasSession bool) Decision {
	if !hasSession {
		if publicRoutes[route] {
			return Allow
		}
		return RedirectLogin
	}
	if route == LoginRoute {
		return RedirectHome
	}
	return Allow
}

// VerifyCredentials compares the supplied password against the stored one.
// A nil user means the email lookup found nothing.
func VerifyCredentials(user *schema.User, password string) error {
	if user == nil {
		return ErrEmailNotFound
	}
	if user.Password != password {
		return ErrPasswordMismatch
	}
	return nil
}
