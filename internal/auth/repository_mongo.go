package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(users *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{users: users}
}

func (r *MongoUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return apperr.Server(err)
	}
	return nil
}

func (r *MongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return false, apperr.Server(err)
	}
	return n > 0, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*User, error) {
	var user User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Server(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("User not found")
	}

	res, err := r.users.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hash},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
	if err != nil {
		return apperr.Server(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func (r *MongoUserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.users.DeleteMany(ctx, bson.D{})
	return apperr.Server(err)
}
