package auth

import "github.com/golang-jwt/jwt/v5"

// Scope is the access tier carried by a token. Initial tokens are issued at
// login before the profile is complete and reach only profile completion and
// full-token reissue; every social-graph mutation requires a full token.
type Scope string

const (
	ScopeInitial Scope = "INITIAL"
	ScopeFull    Scope = "FULL"
)

// AccessClaims is the payload of both token tiers.
type AccessClaims struct {
	UserID   string `json:"user"`
	Username string `json:"username"`
	Scope    Scope  `json:"scope"`
	jwt.RegisteredClaims
}
