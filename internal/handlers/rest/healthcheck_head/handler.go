package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler answers load balancer readiness probes. It reports 503 as
// soon as shutdown begins so the balancer drains traffic before the
// listener closes.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
