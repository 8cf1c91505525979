package connectivity

import (
	"context"
	"sync"
	"time"

	"tasksync/internal/logging"
)

// Prober checks whether the remote store is reachable.
type Prober interface {
	Ping(ctx context.Context) error
}

// Handler is invoked on every online/offline transition with the new state.
type Handler func(online bool)

// Monitor is the single owner of the online/offline bit. State changes are
// edge-triggered: handlers fire exactly once per transition, and repeated
// reports of the same state are ignored.
type Monitor struct {
	mu       sync.Mutex
	online   bool
	handlers []Handler
}

// NewMonitor creates a monitor with the given initial state.
func NewMonitor(online bool) *Monitor {
	return &Monitor{online: online}
}

// Online reports the last observed connectivity state. The state can change
// mid-operation; this is a best-effort check, not a guarantee.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers a handler for connectivity transitions.
func (m *Monitor) Subscribe(handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, handler)
}

// SetOnline records a connectivity observation. Handlers run synchronously,
// and only when the state actually changed.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	handlers := make([]Handler, len(m.handlers))
	copy(handlers, m.handlers)
	m.mu.Unlock()

	logging.Debugf("connectivity changed: online=%v", online)
	for _, handler := range handlers {
		handler(online)
	}
}

// Run probes the remote store on the given interval until the context is
// cancelled, feeding each observation into SetOnline. The first probe runs
// immediately so startup does not wait a full interval.
func (m *Monitor) Run(ctx context.Context, prober Prober, interval time.Duration) {
	m.probe(ctx, prober)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx, prober)
		}
	}
}

func (m *Monitor) probe(ctx context.Context, prober Prober) {
	err := prober.Ping(ctx)
	m.SetOnline(err == nil)
}
