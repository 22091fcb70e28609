package service

import (
	"sync"

	"github.com/rs/zerolog"
)

// Connectivity implements ports.ConnectivityMonitor. Status changes come
// from the transport layer or from an explicit operator toggle; both
// land in SetOnline. Subscribers fire on every change, which is how the
// queue learns it can drain.
type Connectivity struct {
	logger zerolog.Logger

	mu          sync.RWMutex
	online      bool
	subscribers []func(online bool)
}

// NewConnectivity creates a monitor with the given initial status.
func NewConnectivity(online bool, logger zerolog.Logger) *Connectivity {
	return &Connectivity{online: online, logger: logger}
}

// Online reports the current effective status.
func (c *Connectivity) Online() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.online
}

// SetOnline updates the status and notifies subscribers when it changed.
// Callbacks run outside the lock so a subscriber may call back into the
// monitor.
func (c *Connectivity) SetOnline(online bool) {
	c.mu.Lock()
	if c.online == online {
		c.mu.Unlock()
		return
	}
	c.online = online
	subs := make([]func(bool), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	c.logger.Info().Bool("online", online).Msg("connectivity changed")
	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers a callback fired on every status change.
func (c *Connectivity) Subscribe(fn func(online bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}
