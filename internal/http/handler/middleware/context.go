package middleware

import "context"

type contextKey string

const RequestIDKey contextKey = "request_id"
const identityKey contextKey = "identity"

// Identity is the authenticated caller, resolved from the bearer token.
type Identity struct {
	UserID   uint
	Username string
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
