package registry

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/pkg/logger"
)

// Conn is one live real-time session owned by this process.
type Conn struct {
	ID          string
	UserID      int64
	Tenant      entities.Tenant
	AppType     entities.AppType
	Session     Session
	ConnectedAt time.Time

	// lastSeen is guarded by the owning registry's mutex.
	lastSeen time.Time
}

type userKey struct {
	userID  int64
	appType entities.AppType
}

// Registry keeps the local connection table and mirrors it into the
// shared directory. The connection limit is global: admission counts
// local connections plus what other processes have published. The
// directory is advisory; when it is unreachable the registry degrades
// to local-only bookkeeping instead of refusing service.
//
// The mutex guards map state only. Directory I/O always happens outside
// the critical section.
type Registry struct {
	directory       Directory
	clock           clockwork.Clock
	logger          registryLogger
	processID       string
	maxConnsPerUser int
	deadAfter       time.Duration

	mu    sync.RWMutex
	conns map[string]*Conn
	users map[userKey]map[string]*Conn
}

func New(
	directory Directory,
	clock clockwork.Clock,
	log registryLogger,
	processID string,
	maxConnsPerUser int,
	deadAfter time.Duration,
) *Registry {
	return &Registry{
		directory:       directory,
		clock:           clock,
		logger:          log,
		processID:       processID,
		maxConnsPerUser: maxConnsPerUser,
		deadAfter:       deadAfter,
		conns:           make(map[string]*Conn),
		users:           make(map[userKey]map[string]*Conn),
	}
}

// Register admits a connection, enforcing the per-user limit across all
// processes, and publishes it to the shared directory.
func (r *Registry) Register(ctx context.Context, conn *Conn) error {
	if conn == nil || conn.Session == nil || strings.TrimSpace(conn.ID) == "" ||
		conn.UserID <= 0 || !conn.AppType.Valid() {
		return ErrInvalidConn
	}

	remote, err := r.remoteConnCount(ctx, conn.AppType, conn.UserID)
	if err != nil {
		r.logger.Warn("connection directory unavailable, admitting on local count only",
			logger.NewField("conn_id", conn.ID),
			logger.NewField("error", err))
		remote = 0
	}

	key := userKey{userID: conn.UserID, appType: conn.AppType}
	now := r.clock.Now()

	r.mu.Lock()
	if _, exists := r.conns[conn.ID]; exists {
		r.mu.Unlock()
		return ErrDuplicateConn
	}
	if len(r.users[key])+remote >= r.maxConnsPerUser {
		r.mu.Unlock()
		return ErrTooManyConnections
	}

	conn.lastSeen = now
	if conn.ConnectedAt.IsZero() {
		conn.ConnectedAt = now
	}
	r.conns[conn.ID] = conn
	if r.users[key] == nil {
		r.users[key] = make(map[string]*Conn)
	}
	r.users[key][conn.ID] = conn
	r.mu.Unlock()

	metrics.RealtimeConnections.WithLabelValues(conn.AppType.String()).Inc()

	if err := r.directory.RegisterConn(ctx, conn.AppType, conn.UserID, conn.ID, r.processID); err != nil {
		r.logger.Warn("failed to publish connection to directory",
			logger.NewField("conn_id", conn.ID),
			logger.NewField("error", err))
	}
	return nil
}

// Unregister drops a connection from the local table and the directory.
// Unknown ids are a no-op.
func (r *Registry) Unregister(ctx context.Context, connID string) {
	r.mu.Lock()
	conn, ok := r.conns[connID]
	if ok {
		delete(r.conns, connID)
		key := userKey{userID: conn.UserID, appType: conn.AppType}
		delete(r.users[key], connID)
		if len(r.users[key]) == 0 {
			delete(r.users, key)
		}
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	metrics.RealtimeConnections.WithLabelValues(conn.AppType.String()).Dec()

	if err := r.directory.UnregisterConn(ctx, conn.AppType, conn.UserID, connID); err != nil {
		r.logger.Warn("failed to remove connection from directory",
			logger.NewField("conn_id", connID),
			logger.NewField("error", err))
	}
}

// Touch records client liveness and extends the directory entry.
func (r *Registry) Touch(ctx context.Context, connID string) {
	r.mu.Lock()
	conn, ok := r.conns[connID]
	if ok {
		conn.lastSeen = r.clock.Now()
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	if err := r.directory.RefreshConn(ctx, conn.AppType, conn.UserID); err != nil {
		r.logger.Warn("failed to refresh directory entry",
			logger.NewField("conn_id", connID),
			logger.NewField("error", err))
	}
}

// LocalConns returns this process's connections for a user.
func (r *Registry) LocalConns(userID int64, appType entities.AppType) []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.users[userKey{userID: userID, appType: appType}]
	out := make([]*Conn, 0, len(conns))
	for _, conn := range conns {
		out = append(out, conn)
	}
	return out
}

// RoomConns returns this process's connections for an app type.
func (r *Registry) RoomConns(appType entities.AppType) []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Conn, 0)
	for _, conn := range r.conns {
		if conn.AppType == appType {
			out = append(out, conn)
		}
	}
	return out
}

// Sweep drops connections that went silent for longer than the dead
// timeout and probes the rest; a failed probe drops the connection too,
// a successful one counts as liveness. Returns the number of dropped
// connections.
func (r *Registry) Sweep(ctx context.Context) int {
	deadline := r.clock.Now().Add(-r.deadAfter)

	r.mu.RLock()
	stale := make([]*Conn, 0)
	live := make([]*Conn, 0)
	for _, conn := range r.conns {
		if conn.lastSeen.Before(deadline) {
			stale = append(stale, conn)
		} else {
			live = append(live, conn)
		}
	}
	r.mu.RUnlock()

	for _, conn := range live {
		if err := conn.Session.Ping(ctx); err != nil {
			stale = append(stale, conn)
			continue
		}
		r.Touch(ctx, conn.ID)
	}

	for _, conn := range stale {
		if err := conn.Session.Close("connection timed out"); err != nil {
			r.logger.Warn("failed to close dead connection",
				logger.NewField("conn_id", conn.ID),
				logger.NewField("error", err))
		}
		r.Unregister(ctx, conn.ID)
	}
	return len(stale)
}

func (r *Registry) remoteConnCount(ctx context.Context, appType entities.AppType, userID int64) (int, error) {
	entries, err := r.directory.ConnEntries(ctx, appType, userID)
	if err != nil {
		return 0, err
	}

	remote := 0
	for _, processID := range entries {
		if processID != r.processID {
			remote++
		}
	}
	return remote, nil
}
