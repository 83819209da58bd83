package category

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
)

type MongoRepository struct {
	categories *mongo.Collection
}

func NewMongoRepository(categories *mongo.Collection) *MongoRepository {
	return &MongoRepository{categories: categories}
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, apperr.Invalid("Invalid category id")
	}
	return oid, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "name", Value: 1}})
	return r.find(ctx, bson.D{}, opts)
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *MongoRepository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	return r.findOne(ctx, bson.D{{Key: "slug", Value: slug}})
}

func (r *MongoRepository) FindByIDs(ctx context.Context, ids []string) ([]Category, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}

	opts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}, {Key: "slug", Value: 1}})
	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}, opts)
}

func (r *MongoRepository) Create(ctx context.Context, c *Category) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	if _, err := r.categories.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		return apperr.Server(err)
	}
	return nil
}

func (r *MongoRepository) Update(ctx context.Context, c *Category) error {
	c.UpdatedAt = time.Now().UTC()

	res, err := r.categories.UpdateByID(ctx, c.ID, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: c.Name},
		{Key: "slug", Value: c.Slug},
		{Key: "description", Value: c.Description},
		{Key: "icon", Value: c.Icon},
		{Key: "color", Value: c.Color},
		{Key: "isActive", Value: c.IsActive},
		{Key: "sortOrder", Value: c.SortOrder},
		{Key: "updatedAt", Value: c.UpdatedAt},
	}}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		return apperr.Server(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.categories.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return apperr.Server(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.categories.DeleteMany(ctx, bson.D{})
	return apperr.Server(err)
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.D) (*Category, error) {
	var c Category
	err := r.categories.FindOne(ctx, filter).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperr.Server(err)
	}
	return &c, nil
}

func (r *MongoRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]Category, error) {
	cur, err := r.categories.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Server(err)
	}

	categories := []Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, apperr.Server(err)
	}
	return categories, nil
}
