// Package availabilitycache invalidates the cached driver availability
// the assignment path may have warmed. An order leaving the active set
// changes the driver's load, so the stale entry has to go.
package availabilitycache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cache:driver:availability:"

type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Invalidate(ctx context.Context, driverID int64) error {
	key := keyPrefix + strconv.FormatInt(driverID, 10)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("invalidate driver availability: %w", err)
	}
	return nil
}
