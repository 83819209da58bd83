package restaurant

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
	restaurants *mongo.Collection
}

func NewMongoRepository(restaurants *mongo.Collection) *MongoRepository {
	return &MongoRepository{restaurants: restaurants}
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, apperr.Invalid("Invalid restaurant id")
	}
	return oid, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Restaurant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.restaurants.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperr.Server(err)
	}

	restaurants := []Restaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, apperr.Server(err)
	}
	return restaurants, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Restaurant, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var restaurant Restaurant
	err = r.restaurants.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperr.Server(err)
	}
	return &restaurant, nil
}

func (r *MongoRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	if restaurant.ID.IsZero() {
		restaurant.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	restaurant.CreatedAt, restaurant.UpdatedAt = now, now

	_, err := r.restaurants.InsertOne(ctx, restaurant)
	return apperr.Server(err)
}

func (r *MongoRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	restaurant.UpdatedAt = time.Now().UTC()

	res, err := r.restaurants.ReplaceOne(ctx, bson.D{{Key: "_id", Value: restaurant.ID}}, restaurant)
	if err != nil {
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

	res, err := r.restaurants.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return apperr.Server(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Plans
// --------------------------------------------------

type MongoPlanRepository struct {
	plans *mongo.Collection
}

func NewMongoPlanRepository(plans *mongo.Collection) *MongoPlanRepository {
	return &MongoPlanRepository{plans: plans}
}

func (r *MongoPlanRepository) FindPlanRef(ctx context.Context, id string) (*PlanRef, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.Invalid("Invalid plan id")
	}

	opts := options.FindOne().SetProjection(bson.D{{Key: "planName", Value: 1}, {Key: "validity", Value: 1}})

	var plan PlanRef
	err = r.plans.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Plan not found")
	}
	if err != nil {
		return nil, apperr.Server(err)
	}
	return &plan, nil
}
