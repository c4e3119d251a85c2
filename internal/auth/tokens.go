package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/models/entities"
)

const tokenExpiry = 24 * time.Hour

// TokenService signs and verifies access tokens. It is the mechanical half of
// the identity collaborator; the tier rules live in the authorization service.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

func (s *TokenService) CreateInitialAccessToken(user *entities.User) (string, error) {
	return s.sign(user, ScopeInitial)
}

func (s *TokenService) CreateFullAccessToken(user *entities.User) (string, error) {
	return s.sign(user, ScopeFull)
}

func (s *TokenService) sign(user *entities.User, scope Scope) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		UserID:   user.ID,
		Username: user.Username,
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseAccessToken verifies the signature and expiry and returns the claims.
// Every failure mode is an authentication error; the boundary maps it to 401.
func (s *TokenService) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, common.NewAuthenticationError("ParseAccessToken", "invalid access token")
	}
	return claims, nil
}
