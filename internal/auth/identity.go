package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Identity is the authenticated caller. UserID is nil when persistence was
// unavailable while the request was authenticated; the caller is still
// authenticated, but nothing could be stored for them.
type Identity struct {
	Email  string     `json:"email"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

type contextKey struct{}

var identityKey = contextKey{}

var ErrNoIdentity = errors.New("no identity in context")

func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
