package redisfabric

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
)

const (
	directoryKeyPrefix = "rt:conn:"
	queueKeyPrefix     = "rt:queue:"
	busChannelPrefix   = "rt:bus:"

	busBuffer = 64
)

// Fabric is the redis-backed glue between server processes: a shared
// connection directory, per-user offline queues and a per-process
// message bus. Every key is namespaced under rt: and carries a TTL so
// a crashed process leaves no permanent garbage behind.
type Fabric struct {
	client       *redis.Client
	directoryTTL time.Duration
	queueTTL     time.Duration
}

func New(client *redis.Client, directoryTTL, queueTTL time.Duration) *Fabric {
	return &Fabric{
		client:       client,
		directoryTTL: directoryTTL,
		queueTTL:     queueTTL,
	}
}

// RegisterConn publishes a connection into the shared directory so
// other processes can route to it.
func (f *Fabric) RegisterConn(ctx context.Context, appType entities.AppType, userID int64, connID, processID string) error {
	key := directoryKey(appType, userID)

	pipe := f.client.TxPipeline()
	pipe.HSet(ctx, key, connID, processID)
	pipe.Expire(ctx, key, f.directoryTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("register connection: %w", err)
	}
	return nil
}

func (f *Fabric) UnregisterConn(ctx context.Context, appType entities.AppType, userID int64, connID string) error {
	if err := f.client.HDel(ctx, directoryKey(appType, userID), connID).Err(); err != nil {
		return fmt.Errorf("unregister connection: %w", err)
	}
	return nil
}

// RefreshConn extends the directory entry lifetime; called on every
// heartbeat so entries of dead processes expire on their own.
func (f *Fabric) RefreshConn(ctx context.Context, appType entities.AppType, userID int64) error {
	if err := f.client.Expire(ctx, directoryKey(appType, userID), f.directoryTTL).Err(); err != nil {
		return fmt.Errorf("refresh connection: %w", err)
	}
	return nil
}

// ConnEntries returns the directory view for a user: connID to owning
// processID, live connections on every process included.
func (f *Fabric) ConnEntries(ctx context.Context, appType entities.AppType, userID int64) (map[string]string, error) {
	entries, err := f.client.HGetAll(ctx, directoryKey(appType, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read connection directory: %w", err)
	}
	return entries, nil
}

// EnqueueOffline parks a message for a user with no live connection
// anywhere. The queue expires as a whole; an abandoned account does not
// accumulate messages forever.
func (f *Fabric) EnqueueOffline(ctx context.Context, appType entities.AppType, userID int64, payload []byte) error {
	key := queueKey(appType, userID)

	pipe := f.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, f.queueTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("enqueue offline message: %w", err)
	}
	return nil
}

// DrainOffline atomically takes everything queued for a user, oldest
// first, and deletes the queue.
func (f *Fabric) DrainOffline(ctx context.Context, appType entities.AppType, userID int64) ([][]byte, error) {
	key := queueKey(appType, userID)

	pipe := f.client.TxPipeline()
	listed := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("drain offline queue: %w", err)
	}

	values := listed.Val()
	payloads := make([][]byte, 0, len(values))
	for _, value := range values {
		payloads = append(payloads, []byte(value))
	}
	return payloads, nil
}

// BusEnvelope is the message format on the cross-process bus.
type BusEnvelope struct {
	UserID  int64            `json:"user_id"`
	AppType entities.AppType `json:"app_type"`
	Payload json.RawMessage  `json:"payload"`
}

// Publish hands a message to the process that owns the target
// connection; that process delivers it to its local connections only.
func (f *Fabric) Publish(ctx context.Context, processID string, envelope BusEnvelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode bus envelope: %w", err)
	}

	if err := f.client.Publish(ctx, busChannel(processID), data).Err(); err != nil {
		return fmt.Errorf("publish to process bus: %w", err)
	}
	return nil
}

// Subscribe starts listening on this process's own bus channel. The
// returned channel closes when the context is cancelled; undecodable
// messages are skipped.
func (f *Fabric) Subscribe(ctx context.Context, processID string) <-chan BusEnvelope {
	pubsub := f.client.Subscribe(ctx, busChannel(processID))
	messages := make(chan BusEnvelope, busBuffer)

	go func() {
		defer close(messages)
		defer func() { _ = pubsub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				var envelope BusEnvelope
				if err := json.Unmarshal([]byte(raw.Payload), &envelope); err != nil {
					continue
				}
				select {
				case messages <- envelope:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return messages
}

func directoryKey(appType entities.AppType, userID int64) string {
	return directoryKeyPrefix + appType.String() + ":" + strconv.FormatInt(userID, 10)
}

func queueKey(appType entities.AppType, userID int64) string {
	return queueKeyPrefix + appType.String() + ":" + strconv.FormatInt(userID, 10)
}

func busChannel(processID string) string {
	return busChannelPrefix + processID
}
