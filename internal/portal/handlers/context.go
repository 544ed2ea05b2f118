package handlers

import (
	"context"
)

type contextKey string

const (
	tokenKey    contextKey = "token"
	identityKey contextKey = "identity"
)

// Identity is the teacher identity decoded from the bearer token for
// display purposes. The upstream API remains the authority on the token's
// validity.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// WithToken stores the raw bearer token on the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the raw bearer token of the request.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithIdentity stores the decoded teacher identity on the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the decoded teacher identity, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}
