package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

const blockedDatesCollection = "blocked_dates"

// ScheduleRepository persists blocked booking dates.
type ScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{coll: db.Collection(blockedDatesCollection)}
}

func (r *ScheduleRepository) ListBlockedDates(ctx context.Context) ([]domain.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blocked dates: %w", err)
	}
	defer cur.Close(ctx)

	dates := []domain.BlockedDate{}
	if err := cur.All(ctx, &dates); err != nil {
		return nil, fmt.Errorf("decode blocked dates: %w", err)
	}
	return dates, nil
}

func (r *ScheduleRepository) IsDateBlocked(ctx context.Context, date string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return false, fmt.Errorf("count blocked dates: %w", err)
	}
	return n > 0, nil
}

func (r *ScheduleRepository) CreateBlockedDate(ctx context.Context, b *domain.BlockedDate) (*domain.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("insert blocked date: %w", err)
	}
	return b, nil
}

func (r *ScheduleRepository) DeleteBlockedDate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blocked date: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlockedDateNotFound
	}
	return nil
}

// EnsureIndexes creates the date lookup index the booking hot path uses.
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	})
	return err
}
