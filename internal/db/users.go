package db

import (
	"context"
	"errors"
	"fmt"

	"tweetx/internal/schema"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const UsersCollection = "users"

// UserRepo is the typed repository over the users collection.
type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(database string) *UserRepo {
	return &UserRepo{coll: Collection(database, UsersCollection)}
}

// Insert creates a user after checking that no document already claims the
// email. The two steps are not atomic; the unique-email invariant should also
// be backed by a unique index on the collection.
func (r *UserRepo) Insert(ctx context.Context, user *schema.User) (primitive.ObjectID, error) {
	var existing bson.M
	err := r.coll.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		return primitive.NilObjectID, ErrEmailExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, err
	}
	return CreateDocument(ctx, r.coll, user)
}

// FindByEmail returns the user owning email, or ErrNotFound.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*schema.User, error) {
	var user schema.User
	if err := GetDocument(ctx, r.coll, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given document id, or ErrNotFound.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*schema.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user schema.User
	if err := GetDocument(ctx, r.coll, bson.M{"_id": objID}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// All lists every user except the one owning excludeEmail. Pass "" to list
// everyone.
func (r *UserRepo) All(ctx context.Context, excludeEmail string) ([]schema.User, error) {
	filter := bson.M{}
	if excludeEmail != "" {
		filter["email"] = bson.M{"$ne": excludeEmail}
	}
	users := []schema.User{}
	if err := GetDocuments(ctx, r.coll, filter, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePassword overwrites the stored password for the user with id.
func (r *UserRepo) UpdatePassword(ctx context.Context, id string, password string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := UpdateDocument(ctx, r.coll, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"password": password},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// followUpdates builds the pair of update documents that record a follow.
// $addToSet keeps the relationship lists set-valued: repeating a follow never
// duplicates an email.
func followUpdates(actorEmail, targetEmail string) (actorUpdate, targetUpdate bson.M) {
	actorUpdate = bson.M{
		"$addToSet": bson.M{"following": targetEmail},
	}
	targetUpdate = bson.M{
		"$addToSet": bson.M{"followers": actorEmail},
	}
	return actorUpdate, targetUpdate
}

// unfollowUpdates builds the pair of update documents that undo a follow.
func unfollowUpdates(actorEmail, targetEmail string) (actorUpdate, targetUpdate bson.M) {
	actorUpdate = bson.M{
		"$pull": bson.M{"following": targetEmail},
	}
	targetUpdate = bson.M{
		"$pull": bson.M{"followers": actorEmail},
	}
	return actorUpdate, targetUpdate
}

// Follow records actor following target on both documents. The two updates
// run inside one session transaction so the symmetry between following and
// followers cannot be broken by a partial failure.
func (r *UserRepo) Follow(ctx context.Context, actorEmail, targetEmail string) error {
	actorUpdate, targetUpdate := followUpdates(actorEmail, targetEmail)
	return r.applyRelationship(ctx, actorEmail, targetEmail, actorUpdate, targetUpdate)
}

// Unfollow removes actor's follow of target from both documents.
func (r *UserRepo) Unfollow(ctx context.Context, actorEmail, targetEmail string) error {
	actorUpdate, targetUpdate := unfollowUpdates(actorEmail, targetEmail)
	return r.applyRelationship(ctx, actorEmail, targetEmail, actorUpdate, targetUpdate)
}

func (r *UserRepo) applyRelationship(ctx context.Context, actorEmail, targetEmail string, actorUpdate, targetUpdate bson.M) error {
	if actorEmail == targetEmail {
		return ErrSelfFollow
	}

	sess, err := Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		// a zero match means one side of the pair does not exist; committing
		// anyway would leave an entry no user record mirrors
		result, err := UpdateDocument(sc, r.coll, bson.M{"email": actorEmail}, actorUpdate)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		result, err = UpdateDocument(sc, r.coll, bson.M{"email": targetEmail}, targetUpdate)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	return err
}

// FollowersOf lists the users following email: every user whose following
// list contains it. The array-contains filter runs in the store.
func (r *UserRepo) FollowersOf(ctx context.Context, email string) ([]schema.User, error) {
	users := []schema.User{}
	if err := GetDocuments(ctx, r.coll, bson.M{"following": email}, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FollowingOf lists the users email follows: every user whose followers
// list contains it.
func (r *UserRepo) FollowingOf(ctx context.Context, email string) ([]schema.User, error) {
	users := []schema.User{}
	if err := GetDocuments(ctx, r.coll, bson.M{"followers": email}, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
