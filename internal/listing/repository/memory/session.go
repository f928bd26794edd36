package memory

import (
	"context"

	"agenda-bff/internal/listing"
)

func (r *implSessionRepository) Add(id string, v listing.Viewer) {
	r.metrics.SessionOpened()
	r.cache.Add(id, v)
}

func (r *implSessionRepository) Get(id string) (listing.Viewer, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	// re-adding an existing key only moves its expiry forward
	r.cache.Add(id, v)
	return v, true
}

func (r *implSessionRepository) Remove(id string) bool {
	return r.cache.Remove(id)
}

func (r *implSessionRepository) Len() int {
	return r.cache.Len()
}

func (r *implSessionRepository) Purge() {
	r.cache.Purge()
}

// onEvict runs for expiry, capacity eviction and Remove alike.
func (r *implSessionRepository) onEvict(id string, v listing.Viewer) {
	v.Close()
	r.metrics.SessionClosed()
	r.l.Debugf(context.Background(), "listing.repository.memory.onEvict: session %s closed", id)
}
