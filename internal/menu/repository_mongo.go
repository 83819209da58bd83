package menu

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
)

var listSort = bson.D{{Key: "sortOrder", Value: 1}, {Key: "name", Value: 1}}

type MongoRepository struct {
	items *mongo.Collection
}

func NewMongoRepository(items *mongo.Collection) *MongoRepository {
	return &MongoRepository{items: items}
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, apperr.Invalid("Invalid menu item id")
	}
	return oid, nil
}

func parseCategoryID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, apperr.Invalid("Invalid category id")
	}
	return oid, nil
}

// buildFilter translates f into a query document. Search is matched as a
// literal, case-insensitive substring of name or description.
func buildFilter(f Filter) (bson.D, error) {
	filter := bson.D{}

	if f.Category != "" {
		oid, err := parseCategoryID(f.Category)
		if err != nil {
			return nil, err
		}
		filter = append(filter, bson.E{Key: "category", Value: oid})
	}

	if f.Search != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}

	if f.IsAvailable != nil {
		filter = append(filter, bson.E{Key: "isAvailable", Value: *f.IsAvailable})
	}
	return filter, nil
}

func (r *MongoRepository) Find(ctx context.Context, f Filter, skip, limit int64) ([]MenuItem, error) {
	filter, err := buildFilter(f)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(listSort)
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.items.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Server(err)
	}

	items := []MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, apperr.Server(err)
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, f Filter) (int64, error) {
	filter, err := buildFilter(f)
	if err != nil {
		return 0, err
	}

	n, err := r.items.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperr.Server(err)
	}
	return n, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var item MenuItem
	err = r.items.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperr.Server(err)
	}
	return &item, nil
}

func (r *MongoRepository) Create(ctx context.Context, item *MenuItem) error {
	if item.ID.IsZero() {
		item.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now

	if _, err := r.items.InsertOne(ctx, item); err != nil {
		return apperr.Server(err)
	}
	return nil
}

// Update replaces the stored document with item, keeping createdAt.
func (r *MongoRepository) Update(ctx context.Context, item *MenuItem) error {
	item.UpdatedAt = time.Now().UTC()

	res, err := r.items.ReplaceOne(ctx, bson.D{{Key: "_id", Value: item.ID}}, item)
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

	res, err := r.items.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return apperr.Server(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// core.MenuItemDependents
// --------------------------------------------------

func (r *MongoRepository) FindByCategory(ctx context.Context, categoryID string) ([]core.DependentItem, error) {
	oid, err := parseCategoryID(categoryID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}, {Key: "image.publicId", Value: 1}})
	cur, err := r.items.Find(ctx, bson.D{{Key: "category", Value: oid}}, opts)
	if err != nil {
		return nil, apperr.Server(err)
	}

	var docs []MenuItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperr.Server(err)
	}

	dependents := make([]core.DependentItem, 0, len(docs))
	for _, d := range docs {
		dependents = append(dependents, core.DependentItem{
			ID:            d.ID.Hex(),
			ImagePublicID: d.Image.PublicID,
		})
	}
	return dependents, nil
}

func (r *MongoRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return 0, err
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := r.items.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return 0, apperr.Server(err)
	}
	return res.DeletedCount, nil
}
