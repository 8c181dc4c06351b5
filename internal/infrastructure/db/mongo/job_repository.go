package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	return r.find(ctx, bson.M{})
}

func (r *JobRepository) ListOpenByServices(ctx context.Context, services []string) ([]*domain.Job, error) {
	if len(services) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{
		"status":  string(domain.StatusAvailable),
		"service": bson.M{"$in": services},
	})
}

func (r *JobRepository) ListByWorker(ctx context.Context, workerID string) ([]*domain.Job, error) {
	return r.find(ctx, bson.M{"worker_id": workerID})
}

func (r *JobRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Job, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

func (r *JobRepository) find(ctx context.Context, filter bson.M) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	var jobs []*domain.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

// ReplaceIfStatus replaces the job document only when its stored status still
// equals expected. The status filter makes concurrent transitions on the same
// job mutually exclusive: the loser of a race matches zero documents.
func (r *JobRepository) ReplaceIfStatus(ctx context.Context, j *domain.Job, expected domain.JobStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": j.ID, "status": string(expected)}
	res, err := r.col.ReplaceOne(ctx, filter, j)
	if err != nil {
		return fmt.Errorf("replace job: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a vanished job from one that moved on.
		if _, findErr := r.FindByID(ctx, j.ID); errors.Is(findErr, domain.ErrJobNotFound) {
			return domain.ErrJobNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *JobRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

// EnsureIndexes creates the indexes backing the matching queries.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "service", Value: 1}}},
		{Keys: bson.D{{Key: "worker_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
