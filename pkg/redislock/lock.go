package redislock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token, so a
// lock that expired and was re-acquired by another process is never
// released by the previous holder.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Lock is a TTL based mutual exclusion primitive shared between server
// processes. Acquire fails closed: if the store is unreachable nobody is
// granted exclusivity, so a periodic job may miss a run but never runs
// twice concurrently.
type Lock struct {
	client redisClient

	mu     sync.Mutex
	tokens map[string]string
}

func New(client redisClient) *Lock {
	return &Lock{
		client: client,
		tokens: make(map[string]string),
	}
}

func (l *Lock) Acquire(ctx context.Context, key string, ttl time.Duration) bool {
	token, err := uuid.NewV4()
	if err != nil {
		return false
	}

	ok, err := l.client.SetNX(ctx, lockKey(key), token.String(), ttl).Result()
	if err != nil || !ok {
		return false
	}

	l.mu.Lock()
	l.tokens[key] = token.String()
	l.mu.Unlock()
	return true
}

func (l *Lock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	token, ok := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()
	if !ok {
		return nil
	}

	err := l.client.Eval(ctx, releaseScript, []string{lockKey(key)}, token).Err()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	return nil
}

func lockKey(key string) string {
	return "lock:" + key
}
