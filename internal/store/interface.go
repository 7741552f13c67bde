// Package store defines the persistence contract for invites.
package store

import (
	"context"
	"time"

	"github.com/askyourcrush/askyourcrush-server/internal/domain"
)

// InviteStore persists invites and their single response.
type InviteStore interface {
	// Close releases the underlying connection.
	Close() error

	// Ping checks that the backing database is reachable.
	Ping(ctx context.Context) error

	// CreateInvite inserts a new invite.
	// Returns ErrAlreadyExists if the slug is taken.
	CreateInvite(ctx context.Context, invite *domain.Invite) error

	// GetInvite fetches an invite by slug.
	// Returns ErrNotFound if no invite has that slug.
	GetInvite(ctx context.Context, slug string) (*domain.Invite, error)

	// RecordResponse stores the response if and only if none is recorded yet,
	// and returns the updated invite.
	// Returns ErrNotFound for an unknown slug and ErrAlreadyResponded if a
	// response was already recorded.
	RecordResponse(ctx context.Context, slug string, response domain.Response, at time.Time) (*domain.Invite, error)
}
