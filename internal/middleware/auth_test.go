package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/models/entities"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetAccessClaims(r.Context())
		if claims == nil {
			http.Error(w, "no claims in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireFullToken(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"))
	user := &entities.User{ID: "user-1", Username: "testuser"}

	full, _ := tokens.CreateFullAccessToken(user)
	initial, _ := tokens.CreateInitialAccessToken(user)

	handler := RequireFullToken(tokens)(okHandler())

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"full token", "Bearer " + full, http.StatusOK},
		{"initial token on full route", "Bearer " + initial, http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token xyz", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/users/friends", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.want, rr.Code)
		}
	}
}

func TestRequireInitialToken_AcceptsBothTiers(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"))
	user := &entities.User{ID: "user-1", Username: "testuser"}

	full, _ := tokens.CreateFullAccessToken(user)
	initial, _ := tokens.CreateInitialAccessToken(user)

	handler := RequireInitialToken(tokens)(okHandler())

	for _, token := range []string{initial, full} {
		req := httptest.NewRequest("PUT", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rr.Code)
		}
	}
}
