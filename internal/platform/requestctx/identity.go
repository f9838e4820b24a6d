// Package requestctx carries the authenticated request identity through context.
package requestctx

import "context"

// Identity is the authenticated principal for the current request.
type Identity struct {
	// UserID is the stable external user identifier.
	UserID string
	// SessionID is the durable web session backing this request.
	SessionID string
}

// identityContextKey is the context key for authenticated request identity.
type identityContextKey struct{}

// WithIdentity stores the authenticated identity in context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext returns the identity stored in context, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	identity, ok := ctx.Value(identityContextKey{}).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}
	return identity, true
}

// UserIDFromContext returns the user identifier stored in context.
func UserIDFromContext(ctx context.Context) string {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return ""
	}
	return identity.UserID
}
