package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The TTL cleans up holds orphaned by a crash between Acquire and the
// appointment insert. Occupancy itself is checked against the appointment
// store, so an expired hold cannot cause a double booking.
const slotTTL = 48 * time.Hour

// SlotHold serializes concurrent booking requests racing for the same free
// (date, time) via SETNX. The appointment store remains the authoritative
// occupancy record.
// Key format: slot:<date>:<time>
type SlotHold struct {
	client *redis.Client
}

// NewSlotHold creates a SlotHold wrapping the given Redis client.
func NewSlotHold(client *redis.Client) *SlotHold {
	return &SlotHold{client: client}
}

// Acquire reserves the slot; false means another booking holds it.
func (s *SlotHold) Acquire(ctx context.Context, date, timeOfDay string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(date, timeOfDay), "1", slotTTL).Result()
	if err != nil {
		return false, fmt.Errorf("slot acquire: %w", err)
	}
	return ok, nil
}

// Release frees a previously acquired slot so it can be rebooked.
func (s *SlotHold) Release(ctx context.Context, date, timeOfDay string) error {
	if err := s.client.Del(ctx, s.key(date, timeOfDay)).Err(); err != nil {
		return fmt.Errorf("slot release: %w", err)
	}
	return nil
}

func (s *SlotHold) key(date, timeOfDay string) string {
	return fmt.Sprintf("slot:%s:%s", date, timeOfDay)
}
