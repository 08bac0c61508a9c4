// Package quota tracks how many pickups a volunteer has been assigned on
// a given day. The availability core itself is stateless and takes the
// count as an input; this counter is the piece of the surrounding system
// that supplies it. Redis is used so multiple dispatcher instances see a
// consistent count.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
)

// Counter is a per-volunteer, per-day pickup counter backed by Redis
type Counter struct {
	rdb *redis.Client
	ttl time.Duration
}

// incrWithExpiry sets the key's TTL only on first increment, so the window
// expires relative to the day's first recorded pickup
var incrWithExpiry = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// NewCounter creates a counter. ttl bounds how long a day's count lives;
// anything past the day itself is enough, 48h by default.
func NewCounter(rdb *redis.Client, ttl time.Duration) *Counter {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &Counter{rdb: rdb, ttl: ttl}
}

func key(volunteerID string, date model.CalendarDate) string {
	return fmt.Sprintf("pickups:%s:%s", volunteerID, date)
}

// Record increments the volunteer's pickup count for the date and returns
// the new count. Call it when a pickup is actually assigned, not when a
// candidate is merely checked.
func (c *Counter) Record(ctx context.Context, volunteerID string, date model.CalendarDate) (int, error) {
	res, err := incrWithExpiry.Run(ctx, c.rdb, []string{key(volunteerID, date)}, c.ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to record pickup: %w", err)
	}
	return int(res), nil
}

// Count returns the volunteer's pickup count for the date; a missing key
// counts as zero
func (c *Counter) Count(ctx context.Context, volunteerID string, date model.CalendarDate) (int, error) {
	n, err := c.rdb.Get(ctx, key(volunteerID, date)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read pickup count: %w", err)
	}
	return n, nil
}

// Reset clears the volunteer's count for the date
func (c *Counter) Reset(ctx context.Context, volunteerID string, date model.CalendarDate) error {
	if err := c.rdb.Del(ctx, key(volunteerID, date)).Err(); err != nil {
		return fmt.Errorf("failed to reset pickup count: %w", err)
	}
	return nil
}
