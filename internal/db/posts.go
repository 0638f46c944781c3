package db

import (
	"context"
	"time"

	"tweetx/internal/schema"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PostsCollection = "posts"

// PostRepo is the typed repository over the posts collection.
type PostRepo struct {
	coll *mongo.Collection
}

func NewPostRepo(database string) *PostRepo {
	return &PostRepo{coll: Collection(database, PostsCollection)}
}

// newestFirst orders feeds by creation time, newest on top.
var newestFirst = options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

// Insert stores a post and returns the store-assigned id.
func (r *PostRepo) Insert(ctx context.Context, post *schema.Post) (primitive.ObjectID, error) {
	return CreateDocument(ctx, r.coll, post)
}

// All returns the full feed: every post across all users, newest first.
func (r *PostRepo) All(ctx context.Context) ([]schema.Post, error) {
	posts := []schema.Post{}
	if err := GetDocuments(ctx, r.coll, bson.M{}, newestFirst, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ByEmail returns the posts owned by email, newest first.
func (r *PostRepo) ByEmail(ctx context.Context, email string) ([]schema.Post, error) {
	posts := []schema.Post{}
	if err := GetDocuments(ctx, r.coll, bson.M{"email": email}, newestFirst, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ByID returns the post with the given document id, or ErrNotFound.
func (r *PostRepo) ByID(ctx context.Context, id string) (*schema.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var post schema.Post
	if err := GetDocument(ctx, r.coll, bson.M{"_id": objID}, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// editUpdate builds the update document for a content edit. Only content and
// timestamp change; author, email and id are never touched.
func editUpdate(content string, ts time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"content":   content,
			"timestamp": ts,
		},
	}
}

// UpdateContent replaces a post's content and refreshes its timestamp.
func (r *PostRepo) UpdateContent(ctx context.Context, id string, content string, ts time.Time) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := UpdateDocument(ctx, r.coll, bson.M{"_id": objID}, editUpdate(content, ts))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the post with the given document id.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := DeleteDocument(ctx, r.coll, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
