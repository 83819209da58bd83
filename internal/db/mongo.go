package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names match the ones the admin frontend's data was created with.
const (
	CategoriesCollection  = "categories"
	MenuItemsCollection   = "menuitems"
	RestaurantsCollection = "restaurants"
	UsersCollection       = "users"
	PlansCollection       = "plans"
)

// Store owns the Mongo client for the lifetime of the process. It is
// created once in main and passed to every repository.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

func Connect(ctx context.Context, uri, database string, timeout time.Duration, log *zap.Logger) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri not set")
	}

	client, err := mongo.Connect(
		options.Client().
			ApplyURI(uri).
			SetConnectTimeout(timeout).
			SetMaxPoolSize(20),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("connected to MongoDB", zap.String("database", database))

	return &Store{
		client: client,
		db:     client.Database(database),
		log:    log,
	}, nil
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// slug and email indexes back the uniqueness checks made by the services.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for name, models := range indexModels() {
		if _, err := s.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}

	s.log.Info("indexes ensured")
	return nil
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CategoriesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "sortOrder", Value: 1}}},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
		MenuItemsCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "isAvailable", Value: 1}}},
			{Keys: bson.D{{Key: "sortOrder", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		RestaurantsCollection: {
			{Keys: bson.D{{Key: "adminId", Value: 1}}},
		},
	}
}
