package reload

import "sync"

// Hub fans a reload signal out to every subscribed client. Channels are
// buffered by one signal; a client that is still flushing the previous
// signal simply misses the coalesced one.
type Hub struct {
	mu      sync.Mutex
	clients map[chan struct{}]struct{}
	closed  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan struct{}]struct{})}
}

// Subscribe registers a new client and returns its signal channel. The
// channel is closed when the client unsubscribes or the hub shuts down.
func (h *Hub) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch
	}
	h.clients[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a client and closes its channel. Safe to call for
// a channel that was already removed.
func (h *Hub) Unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
}

// Broadcast signals every subscribed client without blocking.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close terminates every client stream and rejects new subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}

// Len returns the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
