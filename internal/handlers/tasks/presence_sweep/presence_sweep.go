package presence_sweep

import (
	"context"
	"time"
)

type Registry interface {
	Sweep(ctx context.Context) int
}

// PresenceSweep periodically drops dead WebSocket connections from the
// local registry. Every process sweeps its own connections, so the task
// needs no cross-process coordination.
type PresenceSweep struct {
	registry Registry
	interval time.Duration
}

func NewPresenceSweep(registry Registry, interval time.Duration) *PresenceSweep {
	return &PresenceSweep{
		registry: registry,
		interval: interval,
	}
}

func (p *PresenceSweep) TTL() time.Duration {
	return p.interval
}

func (p *PresenceSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	p.registry.Sweep(ctxWithTimeout)
	return nil
}

func (p *PresenceSweep) Info() string {
	return "presence sweep"
}
