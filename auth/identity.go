package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the signed-in user a request acts for
type Identity struct {
	ProfileID uuid.UUID
	Email     string
	IsAdmin   bool
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity attached by the auth middleware, if any
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
