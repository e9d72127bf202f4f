// internal/repository/mongo/macro_cycle_repo.go
package mongo

import (
	"alcyxob/training-periodization/internal/domain"
	"alcyxob/training-periodization/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const macroCycleCollectionName = "macro_cycles"

// mongoMacroCycleRepository implements repository.MacroCycleRepository
type mongoMacroCycleRepository struct {
	collection *mongo.Collection
}

// NewMongoMacroCycleRepository creates a new MacroCycle repository.
func NewMongoMacroCycleRepository(db *mongo.Database) repository.MacroCycleRepository {
	return &mongoMacroCycleRepository{
		collection: db.Collection(macroCycleCollectionName),
	}
}

// Save inserts a flattened macrocycle. The document is written in a single
// InsertOne so a failure leaves nothing behind.
func (r *mongoMacroCycleRepository) Save(ctx context.Context, record *domain.MacroCycleRecord) error {
	if record == nil || record.ID == "" || record.UserID == "" {
		return errors.New("macrocycle record requires id and userId")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.UpdatedAt = record.CreatedAt

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateID
		}
		return err
	}
	return nil
}

// GetByID retrieves a single macrocycle record by its ID.
func (r *mongoMacroCycleRepository) GetByID(ctx context.Context, id string) (*domain.MacroCycleRecord, error) {
	var rec domain.MacroCycleRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// GetByUserID lists every macrocycle of a user, newest start date first.
func (r *mongoMacroCycleRepository) GetByUserID(ctx context.Context, userID string) ([]domain.MacroCycleRecord, error) {
	var records []domain.MacroCycleRecord
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}, {Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// SetActive activates one plan and deactivates the user's other plans.
// The two writes are not atomic. When the second one fails the target plan is
// already active next to the others and the returned error wraps
// repository.ErrUpdateFailed; calling SetActive again repairs the state.
func (r *mongoMacroCycleRepository) SetActive(ctx context.Context, userID, id string) error {
	now := time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"isActive": true, "updatedAt": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	_, err = r.collection.UpdateMany(ctx,
		bson.M{"userId": userID, "isActive": true, "_id": bson.M{"$ne": id}},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": now}},
	)
	if err != nil {
		return fmt.Errorf("%w: deactivating other plans: %w", repository.ErrUpdateFailed, err)
	}
	return nil
}

// EnsureMacroCycleIndexes creates necessary indexes. Call during startup.
func EnsureMacroCycleIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "startDate", Value: -1}},
			Options: options.Index(),
		},
		{
			// finding the active plan of a user
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
