package router

import (
	"context"
	"sort"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/internal/realtime/redisfabric"
	"dispatch/internal/realtime/registry"
	"dispatch/pkg/logger"
)

// Via names the path a message took to its recipient.
type Via string

const (
	ViaLocal  Via = "local"
	ViaRemote Via = "remote"
	ViaQueued Via = "queued"
)

// Delivery reports how a send was resolved. TargetProcess is set for
// local and remote deliveries. Dropped means the queue path was chosen
// but the enqueue failed, so the message never landed anywhere.
type Delivery struct {
	Via           Via
	TargetProcess string
	Dropped       bool
}

// Router resolves every send in three steps: a local connection wins,
// otherwise the message is forwarded to the process that owns one,
// otherwise it waits in the offline queue. Fabric failures degrade the
// resolution with a warning; they never fail the send.
type Router struct {
	table     ConnTable
	fabric    Fabric
	processID string
	logger    routerLogger
}

func New(table ConnTable, fabric Fabric, processID string, log routerLogger) *Router {
	return &Router{
		table:     table,
		fabric:    fabric,
		processID: processID,
		logger:    log,
	}
}

func (r *Router) SendToUser(ctx context.Context, userID int64, appType entities.AppType, payload []byte) (Delivery, error) {
	if userID <= 0 || !appType.Valid() {
		return Delivery{}, ErrInvalidTarget
	}

	if conns := r.table.LocalConns(userID, appType); len(conns) > 0 {
		r.writeAll(ctx, conns, payload)
		metrics.RealtimeDeliveries.WithLabelValues(string(ViaLocal)).Inc()
		return Delivery{Via: ViaLocal, TargetProcess: r.processID}, nil
	}

	if target, ok := r.forwardRemote(ctx, userID, appType, payload); ok {
		metrics.RealtimeDeliveries.WithLabelValues(string(ViaRemote)).Inc()
		return Delivery{Via: ViaRemote, TargetProcess: target}, nil
	}

	if err := r.fabric.EnqueueOffline(ctx, appType, userID, payload); err != nil {
		r.logger.Warn("offline queue unavailable, message dropped",
			logger.NewField("user_id", userID),
			logger.NewField("app_type", appType.String()),
			logger.NewField("error", err))
		metrics.RealtimeDeliveries.WithLabelValues("dropped").Inc()
		return Delivery{Via: ViaQueued, Dropped: true}, nil
	}
	metrics.RealtimeDeliveries.WithLabelValues(string(ViaQueued)).Inc()
	return Delivery{Via: ViaQueued}, nil
}

// ConsumeBus delivers forwarded messages to local connections until the
// context is cancelled or the channel closes. Messages for users with
// no local connection are dropped: the sender consulted the directory
// when it forwarded, and a connection gone since then is handled like
// any other disconnect race.
func (r *Router) ConsumeBus(ctx context.Context, messages <-chan redisfabric.BusEnvelope) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case envelope, ok := <-messages:
			if !ok {
				return nil
			}
			r.writeAll(ctx, r.table.LocalConns(envelope.UserID, envelope.AppType), envelope.Payload)
		}
	}
}

// FlushQueued drains the user's offline queue into their local
// connections, oldest first. Call it right after registering a
// connection so the drained messages have somewhere to land.
func (r *Router) FlushQueued(ctx context.Context, userID int64, appType entities.AppType) (int, error) {
	if userID <= 0 || !appType.Valid() {
		return 0, ErrInvalidTarget
	}

	payloads, err := r.fabric.DrainOffline(ctx, appType, userID)
	if err != nil {
		return 0, err
	}

	conns := r.table.LocalConns(userID, appType)
	for _, payload := range payloads {
		r.writeAll(ctx, conns, payload)
	}
	return len(payloads), nil
}

// SendToRoom fans a payload out to every user of an app type connected
// to this process. Membership is local; users connected elsewhere are
// reached by their own process's broadcast.
func (r *Router) SendToRoom(ctx context.Context, appType entities.AppType, payload []byte) int {
	if !appType.Valid() {
		return 0
	}

	seen := make(map[int64]struct{})
	for _, conn := range r.table.RoomConns(appType) {
		seen[conn.UserID] = struct{}{}
	}

	delivered := 0
	for userID := range seen {
		if _, err := r.SendToUser(ctx, userID, appType, payload); err == nil {
			delivered++
		}
	}
	return delivered
}

func (r *Router) SendToAppAdmins(ctx context.Context, payload []byte) int {
	return r.SendToRoom(ctx, entities.AppAdmin, payload)
}

func (r *Router) SendToAppCustomers(ctx context.Context, payload []byte) int {
	return r.SendToRoom(ctx, entities.AppCustomer, payload)
}

// forwardRemote publishes the payload to every remote process holding a
// connection for the user. Reports success when at least one publish
// went through; the returned target is the first process reached, in
// stable order.
func (r *Router) forwardRemote(ctx context.Context, userID int64, appType entities.AppType, payload []byte) (string, bool) {
	entries, err := r.fabric.ConnEntries(ctx, appType, userID)
	if err != nil {
		r.logger.Warn("connection directory unavailable, queueing message",
			logger.NewField("user_id", userID),
			logger.NewField("app_type", appType.String()),
			logger.NewField("error", err))
		return "", false
	}

	remotes := make([]string, 0, len(entries))
	known := make(map[string]struct{}, len(entries))
	for _, processID := range entries {
		if processID == r.processID {
			continue
		}
		if _, ok := known[processID]; ok {
			continue
		}
		known[processID] = struct{}{}
		remotes = append(remotes, processID)
	}
	sort.Strings(remotes)

	target := ""
	for _, processID := range remotes {
		err := r.fabric.Publish(ctx, processID, redisfabric.BusEnvelope{
			UserID:  userID,
			AppType: appType,
			Payload: payload,
		})
		if err != nil {
			r.logger.Warn("bus publish failed",
				logger.NewField("user_id", userID),
				logger.NewField("process_id", processID),
				logger.NewField("error", err))
			continue
		}
		if target == "" {
			target = processID
		}
	}
	return target, target != ""
}

func (r *Router) writeAll(ctx context.Context, conns []*registry.Conn, payload []byte) {
	for _, conn := range conns {
		if err := conn.Session.Write(ctx, payload); err != nil {
			r.logger.Warn("connection write failed",
				logger.NewField("conn_id", conn.ID),
				logger.NewField("error", err))
		}
	}
}
