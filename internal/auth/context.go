package auth

import (
	"context"
	"strings"
)

type identityContextKey struct{}

// ContextWithIdentity attaches the verified caller email to the context.
func ContextWithIdentity(ctx context.Context, email string) context.Context {
	email = strings.TrimSpace(email)
	if email == "" {
		return ctx
	}
	return context.WithValue(ctx, identityContextKey{}, email)
}

// IdentityFromContext returns the verified caller email, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(identityContextKey{}).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
