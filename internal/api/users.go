package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/logging"
	"gathergrid/commune/internal/models/dtos/requests"
	"gathergrid/commune/internal/models/dtos/responses"
	"gathergrid/commune/internal/models/entities"
)

// CreateUserHandler handles POST /users
func CreateUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateUserRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		user := &entities.User{
			ID:             uuid.New().String(),
			Username:       req.Username,
			HashedPassword: hashed,
			CreatedAt:      time.Now(),
		}
		if err := deps.Services.User.InsertUser(r.Context(), user); err != nil {
			respondWithServiceError(w, err)
			return
		}

		sanitized := user.Sanitized()
		respondWithSuccess(w, http.StatusCreated, &sanitized)
	}
}

// EditUserHandler handles PUT /users. Reachable with an initial token: this
// is how a fresh account completes its profile and earns full access.
func EditUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateUserRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		user := req.ToUser(claims.UserID)
		if err := deps.Services.User.UpdateUser(r.Context(), user); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, user)
	}
}

// GetFullAccessTokenHandler handles GET /users/token: trades an initial
// token for a full one once the profile is complete.
func GetFullAccessTokenHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetAccessClaims(r.Context())
		user, err := deps.Services.User.GetUser(r.Context(), claims.UserID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := deps.Services.Auth.AssertFullAccess(user); err != nil {
			respondWithServiceError(w, err)
			return
		}
		token, err := deps.Services.Tokens.CreateFullAccessToken(user)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.AccessTokenResponse{AccessToken: token})
	}
}

// LoginHandler handles POST /users/login. The token tier depends on the
// profile: full when complete, initial otherwise.
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		user, err := deps.Services.User.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		var token string
		if deps.Services.Auth.CheckFullAccess(user) {
			token, err = deps.Services.Tokens.CreateFullAccessToken(user)
		} else {
			token, err = deps.Services.Tokens.CreateInitialAccessToken(user)
		}
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.AccessTokenResponse{AccessToken: token})
	}
}

// GetUserHandler handles GET /users/user/{userId}
func GetUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID := chi.URLParam(r, "userId")
		if _, err := uuid.Parse(targetID); err != nil {
			respondWithError(w, http.StatusBadRequest, "userId must be a valid id")
			return
		}

		user, err := deps.Services.User.GetUser(r.Context(), targetID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertUserVisible(r.Context(), claims.UserID, targetID); err != nil {
			respondWithServiceError(w, err)
			return
		}

		sanitized := user.Sanitized()
		respondWithSuccess(w, http.StatusOK, &sanitized)
	}
}

// GetFriendsHandler handles GET /users/friends?status=. REQUESTED lists
// pending requests addressed to the caller, ACCEPTED lists friends.
func GetFriendsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetAccessClaims(r.Context())

		var (
			users []entities.User
			err   error
		)
		switch r.URL.Query().Get("status") {
		case constants.FriendshipRequested.String():
			users, err = deps.Services.User.GetFriendRequests(r.Context(), claims.UserID)
		case constants.FriendshipAccepted.String():
			users, err = deps.Services.User.GetFriends(r.Context(), claims.UserID)
		default:
			respondWithError(w, http.StatusBadRequest, "status query parameter must be REQUESTED or ACCEPTED")
			return
		}
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &users)
	}
}

// AddFriendHandler handles POST /users/friends
func AddFriendHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UsernameObject
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		recipientID, err := deps.Services.User.UsernameToID(r.Context(), req.Username)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		claims := auth.GetAccessClaims(r.Context())
		logging.Info("friend request", "sender", claims.UserID, "recipient", recipientID)

		if err := deps.Services.User.RequestFriendship(r.Context(), recipientID, claims.UserID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		deps.Metrics.FriendshipsRequestedTotal.Inc()
		countDeliveries(deps, deps.Services.Notification.SendFriendRequestNotification(r.Context(), claims.UserID, recipientID))

		respondWithSuccess(w, http.StatusCreated, &responses.MessageResponse{Message: "Friend request sent"})
	}
}

// AcceptFriendHandler handles PUT /users/friends
func AcceptFriendHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.AcceptFriendshipRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		senderID, err := deps.Services.User.UsernameToID(r.Context(), req.Username)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		claims := auth.GetAccessClaims(r.Context())

		if err := deps.Services.User.AcceptFriendship(r.Context(), claims.UserID, senderID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		deps.Metrics.FriendshipsAcceptedTotal.Inc()
		countDeliveries(deps, deps.Services.Notification.SendFriendAcceptNotification(r.Context(), claims.UserID, senderID))

		respondWithSuccess(w, http.StatusOK, &responses.MessageResponse{Message: "Friend request accepted"})
	}
}
