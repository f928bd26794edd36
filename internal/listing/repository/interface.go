package repository

import "agenda-bff/internal/listing"

// SessionRepository holds open controllers by session id.
// Removing or expiring a session closes its controller.
//
//go:generate mockgen -source=interface.go -destination=mocks/repository.go -package=mocks
type SessionRepository interface {
	Add(id string, v listing.Viewer)
	// Get returns the controller and extends its lifetime.
	Get(id string) (listing.Viewer, bool)
	Remove(id string) bool
	Len() int
	// Purge closes every session.
	Purge()
}
