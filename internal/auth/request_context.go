package auth

import (
	"context"
)

type contextKey string

var accessClaimsKey contextKey = "access_claims"

func SetAccessClaims(ctx context.Context, claims *AccessClaims) context.Context {
	return context.WithValue(ctx, accessClaimsKey, claims)
}

// GetAccessClaims returns the claims placed in the context by the auth
// middleware, or nil when the request carried no valid token.
func GetAccessClaims(ctx context.Context) *AccessClaims {
	val := ctx.Value(accessClaimsKey)
	if claims, ok := val.(*AccessClaims); ok {
		return claims
	}
	return nil
}
