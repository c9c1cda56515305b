package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes provisions every index the application relies on. Run once at
// startup; CreateIndexes is idempotent on the server side.
//
// The unique username index is load-bearing: the admin bootstrap and the
// login flow both assume the store rejects duplicate usernames.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := NewServiceRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("services indexes: %w", err)
	}
	if err := NewAppointmentRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("appointments indexes: %w", err)
	}
	if err := NewScheduleRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("blocked dates indexes: %w", err)
	}
	return nil
}
