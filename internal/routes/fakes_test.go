package routes

import (
	"context"
	"sort"
	"time"

	"tweetx/internal/db"
	"tweetx/internal/schema"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- fakes ---

// fakeUserStore mirrors the mongo repo's behavior, including the set
// semantics of $addToSet/$pull on the relationship lists.
type fakeUserStore struct {
	users map[string]*schema.User // keyed by email
}

func newFakeUserStore(users ...*schema.User) *fakeUserStore {
	f := &fakeUserStore{users: map[string]*schema.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUserStore) Insert(ctx context.Context, user *schema.User) (primitive.ObjectID, error) {
	if _, ok := f.users[user.Email]; ok {
		return primitive.NilObjectID, db.ErrEmailExists
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*schema.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, db.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*schema.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserStore) All(ctx context.Context, excludeEmail string) ([]schema.User, error) {
	users := []schema.User{}
	for _, u := range f.users {
		if u.Email != excludeEmail {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id string, password string) error {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Password = password
	return nil
}

func (f *fakeUserStore) Follow(ctx context.Context, actorEmail, targetEmail string) error {
	if actorEmail == targetEmail {
		return db.ErrSelfFollow
	}
	actor, ok := f.users[actorEmail]
	if !ok {
		return db.ErrNotFound
	}
	target, ok := f.users[targetEmail]
	if !ok {
		return db.ErrNotFound
	}
	actor.Following = addToSet(actor.Following, targetEmail)
	target.Followers = addToSet(target.Followers, actorEmail)
	return nil
}

func (f *fakeUserStore) Unfollow(ctx context.Context, actorEmail, targetEmail string) error {
	if actorEmail == targetEmail {
		return db.ErrSelfFollow
	}
	actor, ok := f.users[actorEmail]
	if !ok {
		return db.ErrNotFound
	}
	target, ok := f.users[targetEmail]
	if !ok {
		return db.ErrNotFound
	}
	actor.Following = pull(actor.Following, targetEmail)
	target.Followers = pull(target.Followers, actorEmail)
	return nil
}

func (f *fakeUserStore) FollowersOf(ctx context.Context, email string) ([]schema.User, error) {
	users := []schema.User{}
	for _, u := range f.users {
		if contains(u.Following, email) {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUserStore) FollowingOf(ctx context.Context, email string) ([]schema.User, error) {
	users := []schema.User{}
	for _, u := range f.users {
		if contains(u.Followers, email) {
			users = append(users, *u)
		}
	}
	return users, nil
}

type fakePostStore struct {
	posts map[string]*schema.Post // keyed by hex id
}

func newFakePostStore(posts ...*schema.Post) *fakePostStore {
	f := &fakePostStore{posts: map[string]*schema.Post{}}
	for _, p := range posts {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		f.posts[p.ID.Hex()] = p
	}
	return f
}

func (f *fakePostStore) Insert(ctx context.Context, post *schema.Post) (primitive.ObjectID, error) {
	post.ID = primitive.NewObjectID()
	f.posts[post.ID.Hex()] = post
	return post.ID, nil
}

func (f *fakePostStore) All(ctx context.Context) ([]schema.Post, error) {
	posts := []schema.Post{}
	for _, p := range f.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Timestamp.After(posts[j].Timestamp) })
	return posts, nil
}

func (f *fakePostStore) ByEmail(ctx context.Context, email string) ([]schema.Post, error) {
	posts := []schema.Post{}
	for _, p := range f.posts {
		if p.Email == email {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Timestamp.After(posts[j].Timestamp) })
	return posts, nil
}

func (f *fakePostStore) ByID(ctx context.Context, id string) (*schema.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return post, nil
}

func (f *fakePostStore) UpdateContent(ctx context.Context, id string, content string, ts time.Time) error {
	post, ok := f.posts[id]
	if !ok {
		return db.ErrNotFound
	}
	post.Content = content
	post.Timestamp = ts
	return nil
}

func (f *fakePostStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

// --- helpers ---

func addToSet(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	return append(list, v)
}

func pull(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
