package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"gathergrid/commune/internal/api"
	"gathergrid/commune/internal/middleware"
)

// RegisterRoutes builds the Chi router: global middleware, the health
// check, and the authenticated route groups. The /metrics endpoint is
// mounted on the outer mux, not here, so scrapes skip the middleware
// stack.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.RateLimitMiddleware(rate.Limit(deps.RateLimitRPS), deps.RateLimitBurst))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps.DB, upSince))

	tokens := deps.Services.Tokens

	r.Route("/users", func(users chi.Router) {
		users.Post("/", api.CreateUserHandler(deps))
		users.Post("/login", api.LoginHandler(deps))

		// Initial-token tier: profile completion and full-token reissue
		// are the only endpoints a fresh account can reach.
		users.Group(func(initial chi.Router) {
			initial.Use(middleware.RequireInitialToken(tokens))
			initial.Put("/", api.EditUserHandler(deps))
			initial.Get("/token", api.GetFullAccessTokenHandler(deps))
		})

		users.Group(func(full chi.Router) {
			full.Use(middleware.RequireFullToken(tokens))
			full.Get("/user/{userId}", api.GetUserHandler(deps))
			full.Get("/friends", api.GetFriendsHandler(deps))
			full.Post("/friends", api.AddFriendHandler(deps))
			full.Put("/friends", api.AcceptFriendHandler(deps))
		})
	})

	r.Route("/communities", func(communities chi.Router) {
		communities.Use(middleware.RequireFullToken(tokens))
		communities.Get("/{communityId}", api.GetCommunityHandler(deps))
		communities.Get("/{communityId}/members", api.GetCommunityMembersHandler(deps))
		communities.Post("/", api.CreateCommunityHandler(deps))
		communities.Post("/invite", api.InviteToCommunityHandler(deps))
		communities.Post("/accept", api.AcceptCommunityInviteHandler(deps))
		communities.Put("/", api.EditCommunityHandler(deps))
	})

	r.Route("/events", func(events chi.Router) {
		events.Use(middleware.RequireFullToken(tokens))
		events.Get("/", api.GetEventsHandler(deps))
		events.Get("/{eventId}", api.GetEventHandler(deps))
		events.Get("/{eventId}/attendance", api.GetEventAttendanceHandler(deps))
		events.Post("/invite-event", api.CreateInviteEventHandler(deps))
		events.Post("/community-event", api.CreateCommunityEventHandler(deps))
		events.Post("/invite", api.CreateEventInvitesHandler(deps))
		events.Post("/attendance", api.CreateCommunityEventAttendanceHandler(deps))
		events.Put("/", api.EditEventHandler(deps))
		events.Put("/attendance", api.EditAttendanceHandler(deps))
	})

	r.Route("/notifications", func(notifications chi.Router) {
		notifications.Use(middleware.RequireFullToken(tokens))
		notifications.Get("/", api.GetNotificationsHandler(deps))
	})

	return r
}
