package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"gathergrid/commune/internal/api"
	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/db"
	"gathergrid/commune/internal/db/repositories"
	"gathergrid/commune/internal/metrics"
	"gathergrid/commune/internal/models/dtos/responses"
	"gathergrid/commune/internal/models/entities"
	"gathergrid/commune/internal/routes"
	"gathergrid/commune/internal/services"
)

var (
	routerOnce sync.Once
	testRouter http.Handler
)

// setupRouter wires the full stack against an in-memory database. Built
// once: the Prometheus registry only tolerates a single registration per
// process.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	routerOnce.Do(func() {
		conn, err := db.OpenSQLite(":memory:")
		if err != nil {
			t.Fatalf("failed to open test database: %v", err)
		}
		sqlDB, err := conn.DB()
		if err != nil {
			t.Fatalf("failed to get raw handle: %v", err)
		}

		stores := &api.Stores{
			Users:         repositories.NewUserRepositoryGORM(conn),
			Friendships:   repositories.NewFriendshipRepositoryGORM(conn),
			Memberships:   repositories.NewMembershipRepositoryGORM(conn),
			Attendances:   repositories.NewAttendanceRepositoryGORM(conn),
			Communities:   repositories.NewCommunityRepositoryGORM(conn),
			Events:        repositories.NewEventRepositoryGORM(conn),
			Notifications: repositories.NewNotificationRepositoryGORM(conn),
		}
		cache := common.NewCacheService(time.Minute, time.Minute)
		userSvc := services.NewUserService(stores.Users, stores.Friendships, cache)
		communitySvc := services.NewCommunityService(stores.Communities, stores.Memberships)
		eventSvc := services.NewEventService(stores.Events, stores.Attendances)

		deps := &api.Dependencies{
			Stores: stores,
			Services: &api.Services{
				Cache:        cache,
				Tokens:       auth.NewTokenService([]byte("test-secret")),
				User:         userSvc,
				Community:    communitySvc,
				Event:        eventSvc,
				Auth:         services.NewAuthService(userSvc, communitySvc, eventSvc),
				Notification: services.NewNotificationService(stores.Notifications, communitySvc, eventSvc),
			},
			Metrics: metrics.NewMetricsRegistry(),
			DB:      sqlDB,
			// Every httptest request shares one RemoteAddr; production
			// limits would starve the suite.
			RateLimitRPS:   10000,
			RateLimitBurst: 10000,
		}
		testRouter = routes.RegisterRoutes(deps, time.Now())
	})
	return testRouter
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeData[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var resp responses.APIResponse[T]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.Data
}

// registerAndLogin creates a user, completes the profile, and returns the
// full-access token.
func registerAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	rr := doJSON(t, router, "POST", "/users", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create user: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "POST", "/users/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	initial := decodeData[responses.AccessTokenResponse](t, rr).AccessToken

	rr = doJSON(t, router, "PUT", "/users", initial, map[string]string{
		"firstName":   "Test",
		"lastName":    "User",
		"dateOfBirth": "1990-01-01",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("edit user: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "GET", "/users/token", initial, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("full token: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	return decodeData[responses.AccessTokenResponse](t, rr).AccessToken
}

func TestInitialTokenCannotReachGraphMutations(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, "POST", "/users", "", map[string]string{
		"username": "tier-test-user",
		"password": "password123",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create user: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "POST", "/users/login", "", map[string]string{
		"username": "tier-test-user",
		"password": "password123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rr.Code)
	}
	initial := decodeData[responses.AccessTokenResponse](t, rr).AccessToken

	// The incomplete profile cannot trade up.
	rr = doJSON(t, router, "GET", "/users/token", initial, nil)
	if rr.Code != http.StatusForbidden {
		t.Errorf("full token before profile completion: expected 403, got %d", rr.Code)
	}

	// Graph mutations are out of reach for the initial tier.
	rr = doJSON(t, router, "POST", "/users/friends", initial, map[string]string{
		"username": "whoever-else",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("friend request with initial token: expected 401, got %d", rr.Code)
	}
}

func TestFriendRequestLifecycle(t *testing.T) {
	router := setupRouter(t)

	aliceToken := registerAndLogin(t, router, "alice-flow-user")
	bobToken := registerAndLogin(t, router, "bob-flow-user")

	rr := doJSON(t, router, "POST", "/users/friends", aliceToken, map[string]string{
		"username": "bob-flow-user",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add friend: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	// Bob sees the pending request.
	rr = doJSON(t, router, "GET", "/users/friends?status=REQUESTED", bobToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("friend requests: expected 200, got %d", rr.Code)
	}
	requests := decodeData[[]entities.User](t, rr)
	if requests == nil || len(*requests) != 1 || (*requests)[0].Username != "alice-flow-user" {
		t.Fatalf("expected one pending request from alice, got %v", requests)
	}

	rr = doJSON(t, router, "PUT", "/users/friends", bobToken, map[string]string{
		"username": "alice-flow-user",
		"status":   "ACCEPTED",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("accept friend: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "GET", "/users/friends?status=ACCEPTED", aliceToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("friends: expected 200, got %d", rr.Code)
	}
	friends := decodeData[[]entities.User](t, rr)
	if friends == nil || len(*friends) != 1 || (*friends)[0].Username != "bob-flow-user" {
		t.Fatalf("expected bob in alice's friends, got %v", friends)
	}

	// The duplicate request conflicts in either direction.
	rr = doJSON(t, router, "POST", "/users/friends", bobToken, map[string]string{
		"username": "alice-flow-user",
	})
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate friend request: expected 409, got %d", rr.Code)
	}
}

func TestCommunityInviteLifecycle(t *testing.T) {
	router := setupRouter(t)

	adminToken := registerAndLogin(t, router, "admin-flow-user")
	memberToken := registerAndLogin(t, router, "member-flow-user")

	// Friendship first: only friends can be invited.
	rr := doJSON(t, router, "POST", "/users/friends", adminToken, map[string]string{
		"username": "member-flow-user",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add friend: expected 201, got %d", rr.Code)
	}
	rr = doJSON(t, router, "PUT", "/users/friends", memberToken, map[string]string{
		"username": "admin-flow-user",
		"status":   "ACCEPTED",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("accept friend: expected 200, got %d", rr.Code)
	}

	rr = doJSON(t, router, "POST", "/communities", adminToken, map[string]string{
		"name": "flow test club",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create community: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	community := decodeData[entities.Community](t, rr)

	// Resolve the member's id for the invite body.
	rr = doJSON(t, router, "GET", "/users/friends?status=ACCEPTED", adminToken, nil)
	friends := decodeData[[]entities.User](t, rr)
	if friends == nil || len(*friends) != 1 {
		t.Fatalf("expected one friend, got %v", friends)
	}
	memberID := (*friends)[0].ID

	rr = doJSON(t, router, "POST", "/communities/invite", adminToken, map[string]any{
		"community": community.ID,
		"invitees":  []string{memberID},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("invite: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "POST", "/communities/accept", memberToken, map[string]string{
		"community": community.ID,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("accept invite: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// A second accept conflicts: the row is already MEMBER.
	rr = doJSON(t, router, "POST", "/communities/accept", memberToken, map[string]string{
		"community": community.ID,
	})
	if rr.Code != http.StatusConflict {
		t.Errorf("second accept: expected 409, got %d", rr.Code)
	}

	// The admin holds three notifications: the friend acceptance, then
	// the membership acceptance pair in order.
	rr = doJSON(t, router, "GET", "/notifications", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("notifications: expected 200, got %d", rr.Code)
	}
	notifications := decodeData[[]entities.Notification](t, rr)
	if notifications == nil || len(*notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %v", notifications)
	}
	if (*notifications)[1].Type != "FRIEND_REQUEST_ACCEPTED" {
		t.Errorf("expected FRIEND_REQUEST_ACCEPTED first in pair, got %s", (*notifications)[1].Type)
	}
	if (*notifications)[2].Type != "COMMUNITY_INVITE_ACCEPTED" {
		t.Errorf("expected COMMUNITY_INVITE_ACCEPTED second in pair, got %s", (*notifications)[2].Type)
	}
}
