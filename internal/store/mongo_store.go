package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/gocommerce/catalog/internal/domain"
	perrors "github.com/gocommerce/catalog/internal/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UniqueActiveNameIndex is the partial unique index that scopes name uniqueness to active products.
const UniqueActiveNameIndex = "unique_active_product_name"

// MongoStore implements ProductStore using a MongoDB collection as the data store.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a new instance of ProductStore using a MongoDB collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// EnsureIndexes creates the indexes the store relies on. It is idempotent.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName(UniqueActiveNameIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "isActive", Value: true}}),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("unique_product_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category_index"),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}},
			Options: options.Index().SetName("active_status_index"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_index"),
		},
	}
	if _, err := m.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (m *MongoStore) FindByID(ctx context.Context, id string) (*domain.Record, error) {
	return m.findOne(ctx, bson.D{{Key: "id", Value: id}})
}

// FindActiveByName retrieves the active product with the given name.
// Returns ErrProductNotFound if there is none.
func (m *MongoStore) FindActiveByName(ctx context.Context, name, excludeID string) (*domain.Record, error) {
	filter := bson.D{
		{Key: "name", Value: name},
		{Key: "isActive", Value: true},
	}
	if excludeID != "" {
		filter = append(filter, bson.E{Key: "id", Value: bson.D{{Key: "$ne", Value: excludeID}}})
	}
	return m.findOne(ctx, filter)
}

func (m *MongoStore) findOne(ctx context.Context, filter bson.D) (*domain.Record, error) {
	var record domain.Record
	if err := m.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &record, nil
}

// Find retrieves the products matching the filter, newest first.
// It returns a slice of products, which may be empty if nothing matches.
func (m *MongoStore) Find(ctx context.Context, filter Filter) ([]domain.Record, error) {
	query := bson.D{}
	if filter.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *filter.Category})
	}
	if filter.IsActive != nil {
		query = append(query, bson.E{Key: "isActive", Value: *filter.IsActive})
	}
	if filter.Search != nil {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(*filter.Search), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}

	cursor, err := m.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	records := make([]domain.Record, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return records, nil
}

// Insert adds a new product.
// Returns ErrDuplicateName if the unique active name index rejects it.
func (m *MongoStore) Insert(ctx context.Context, record domain.Record) error {
	if _, err := m.coll.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to insert product %q: %w", record.Name, perrors.ErrDuplicateName)
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update sets the mutable fields of an existing product. ID, activity flag and creation time are never touched.
// Returns ErrProductNotFound if no product exists with the given ID.
func (m *MongoStore) Update(ctx context.Context, record domain.Record) error {
	set := bson.D{
		{Key: "name", Value: record.Name},
		{Key: "description", Value: record.Description},
		{Key: "price", Value: record.Price},
		{Key: "category", Value: record.Category},
		{Key: "imageUrl", Value: record.ImageURL},
		{Key: "imageId", Value: record.ImageID},
		{Key: "updatedAt", Value: record.UpdatedAt},
	}
	res, err := m.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: record.ID}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to update product %q: %w", record.Name, perrors.ErrDuplicateName)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// Deactivate marks an active product inactive, writing only isActive and updatedAt.
// Returns ErrAlreadyInactive if no active product exists with the given ID.
func (m *MongoStore) Deactivate(ctx context.Context, id string, updatedAt time.Time) error {
	filter := bson.D{
		{Key: "id", Value: id},
		{Key: "isActive", Value: true},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isActive", Value: false},
		{Key: "updatedAt", Value: updatedAt},
	}}}
	res, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	if res.MatchedCount == 0 {
		return perrors.ErrAlreadyInactive
	}
	return nil
}

// DeleteAll removes every product from the collection.
func (m *MongoStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := m.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return res.DeletedCount, nil
}
