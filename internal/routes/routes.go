package routes

// Package routes handles all the routing logic for the application

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tweetx/internal/schema"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FOLLOW_ROUTE   = "/follow"
	UNFOLLOW_ROUTE = "/unfollow"
)

// UserStore is the slice of the document store the handlers need for users
// and their relationships.
type UserStore interface {
	Insert(ctx context.Context, user *schema.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*schema.User, error)
	FindByID(ctx context.Context, id string) (*schema.User, error)
	All(ctx context.Context, excludeEmail string) ([]schema.User, error)
	UpdatePassword(ctx context.Context, id string, password string) error
	Follow(ctx context.Context, actorEmail, targetEmail string) error
	Unfollow(ctx context.Context, actorEmail, targetEmail string) error
	FollowersOf(ctx context.Context, email string) ([]schema.User, error)
	FollowingOf(ctx context.Context, email string) ([]schema.User, error)
}

// PostStore is the slice of the document store the handlers need for posts.
type PostStore interface {
	Insert(ctx context.Context, post *schema.Post) (primitive.ObjectID, error)
	All(ctx context.Context) ([]schema.Post, error)
	ByEmail(ctx context.Context, email string) ([]schema.Post, error)
	ByID(ctx context.Context, id string) (*schema.Post, error)
	UpdateContent(ctx context.Context, id string, content string, ts time.Time) error
	Delete(ctx context.Context, id string) error
}

type App struct {
	users      UserStore
	posts      PostStore
	log        zerolog.Logger
	sessionTTL time.Duration
}

func NewApp(users UserStore, posts PostStore, log zerolog.Logger, sessionTTL time.Duration) *App {
	return &App{
		users:      users,
		posts:      posts,
		log:        log,
		sessionTTL: sessionTTL,
	}
}

// Router builds the route table. The gate middleware wraps every route; the
// public set is handled inside the gate itself.
func (a *App) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(a.requestLogger, a.gate)
	// mux serves unmatched paths straight from NotFoundHandler, skipping the
	// middleware chain, so unknown routes get the same gate treatment here.
	router.NotFoundHandler = a.requestLogger(a.gate(http.NotFoundHandler()))

	router.HandleFunc("/auth/signup", a.signupHandler).Methods("POST")
	router.HandleFunc("/auth/login", a.loginHandler).Methods("POST")
	router.HandleFunc("/auth/logout", a.logoutHandler).Methods("POST")
	router.HandleFunc("/auth/forgot-password", a.forgotPasswordHandler).Methods("POST")
	router.HandleFunc("/auth/forgot-password", a.resetPasswordHandler).Methods("PUT")

	router.HandleFunc("/feed", a.feedHandler).Methods("GET")
	router.HandleFunc("/post", a.postHandler).Methods("POST", "GET", "PATCH", "DELETE")

	router.HandleFunc("/users", a.usersHandler).Methods("GET")
	router.HandleFunc("/profile", a.profileHandler).Methods("GET")
	router.HandleFunc(FOLLOW_ROUTE, a.followHandler).Methods("POST")
	router.HandleFunc(UNFOLLOW_ROUTE, a.followHandler).Methods("POST")

	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
