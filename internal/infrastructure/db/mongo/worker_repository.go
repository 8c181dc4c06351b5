package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// WorkerRepository implements ports.WorkerRepository using MongoDB.
type WorkerRepository struct {
	col *mongo.Collection
}

func NewWorkerRepository(db *mongo.Database) *WorkerRepository {
	return &WorkerRepository{col: db.Collection(collectionWorkers)}
}

func (r *WorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, w)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

func (r *WorkerRepository) FindByID(ctx context.Context, id string) (*domain.Worker, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *WorkerRepository) FindByEmail(ctx context.Context, email string) (*domain.Worker, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *WorkerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Worker
	if err := r.col.FindOne(ctx, filter).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("find worker: %w", err)
	}
	return &w, nil
}

func (r *WorkerRepository) List(ctx context.Context) ([]*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	var workers []*domain.Worker
	if err := cur.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("decode workers: %w", err)
	}
	return workers, nil
}

func (r *WorkerRepository) Update(ctx context.Context, w *domain.Worker) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": w.ID}, w)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *WorkerRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

// EnsureIndexes enforces email uniqueness within the workers collection and
// speeds up matching on declared services.
func (r *WorkerRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: indexUnique()},
		{Keys: bson.D{{Key: "services", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func indexUnique() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
