package session

import (
	"context"
	"sync"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/events"
	"github.com/Skotchmaster/rockstar_shop/internal/kv"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/Skotchmaster/rockstar_shop/internal/metrics"
	"github.com/Skotchmaster/rockstar_shop/internal/notify"
	"github.com/Skotchmaster/rockstar_shop/internal/repo"
)

// RegistryConfig is shared by every device. QueueOptions apply to each
// device's notification queue.
type RegistryConfig struct {
	Store        kv.Store
	Events       events.Publisher
	Metrics      *metrics.Metrics
	Latency      time.Duration
	Now          func() time.Time
	QueueOptions []notify.QueueOption
}

type entry struct {
	state    *State
	lastSeen time.Time
}

// Registry owns one State per device. It is built once at startup and
// closed at shutdown.
type Registry struct {
	cfg RegistryConfig

	mu     sync.Mutex
	states map[string]*entry
	closed bool
}

func NewRegistry(cfg RegistryConfig) *Registry {
	return &Registry{
		cfg:    cfg,
		states: make(map[string]*entry),
	}
}

// Get returns the device's State, restoring it from storage on first use.
func (r *Registry) Get(ctx context.Context, deviceID string) (*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if e, ok := r.states[deviceID]; ok {
		e.lastSeen = time.Now()
		return e.state, nil
	}

	opts := append([]notify.QueueOption{
		notify.OnPush(func(n notify.Notification) { r.cfg.Metrics.Notification(string(n.Type)) }),
	}, r.cfg.QueueOptions...)

	st, err := New(ctx, Deps{
		DeviceID:      deviceID,
		Store:         repo.New(kv.Namespaced(r.cfg.Store, deviceID)),
		Notifications: notify.NewQueue(opts...),
		Events:        r.cfg.Events,
		Metrics:       r.cfg.Metrics,
		Latency:       r.cfg.Latency,
		Now:           r.cfg.Now,
	})
	if err != nil {
		return nil, err
	}

	r.states[deviceID] = &entry{state: st, lastSeen: time.Now()}
	r.cfg.Metrics.StateOpened()
	logging.FromContext(ctx).Debug("session_opened", "device", deviceID)
	return st, nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Sweep closes states idle for longer than maxIdle. Everything they hold
// that matters is in storage and comes back on the next Get.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	n := 0
	for id, e := range r.states {
		if e.lastSeen.Before(cutoff) {
			e.state.Close()
			delete(r.states, id)
			r.cfg.Metrics.StateClosed()
			n++
		}
	}
	return n
}

// Close tears down every state and refuses new ones.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.states {
		e.state.Close()
		delete(r.states, id)
		r.cfg.Metrics.StateClosed()
	}
	r.closed = true
}
