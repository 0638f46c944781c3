// Package db wraps the MongoDB driver behind a small document-store surface:
// generic collection/document operations plus typed repositories for the
// users and posts collections.
package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// Connect establishes the shared client connection.
func Connect(ctx context.Context, uri string) error {
	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to database at %v: %w", uri, err)
	}
	return nil
}

// Disconnect tears down the shared client connection.
func Disconnect(ctx context.Context) error {
	return client.Disconnect(ctx)
}

// Client exposes the shared client, needed to start sessions for
// multi-document transactions.
func Client() *mongo.Client {
	return client
}

// Collection returns a handle to a named collection.
func Collection(database string, name string) *mongo.Collection {
	return client.Database(database).Collection(name)
}

// GetDocument fetches a single document matching filter into out.
// No match is reported as ErrNotFound.
func GetDocument(ctx context.Context, coll *mongo.Collection, filter any, out any) error {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// GetDocuments fetches all documents matching filter into out, which must be
// a pointer to a slice.
func GetDocuments(ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions, out any) error {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// CreateDocument inserts doc and returns the store-assigned id.
func CreateDocument(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

// UpdateDocument applies update to the documents matching filter.
func UpdateDocument(ctx context.Context, coll *mongo.Collection, filter any, update any) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

// DeleteDocument removes the documents matching filter.
func DeleteDocument(ctx context.Context, coll *mongo.Collection, filter any) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}
