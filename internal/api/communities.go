package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/models/dtos/requests"
	"gathergrid/commune/internal/models/dtos/responses"
)

// GetCommunityHandler handles GET /communities/{communityId}
func GetCommunityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		communityID := chi.URLParam(r, "communityId")
		if _, err := uuid.Parse(communityID); err != nil {
			respondWithError(w, http.StatusBadRequest, "communityId must be a valid id")
			return
		}

		community, err := deps.Services.Community.GetCommunity(r.Context(), communityID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertCommunityVisible(r.Context(), claims.UserID, communityID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, community)
	}
}

// GetCommunityMembersHandler handles GET /communities/{communityId}/members
func GetCommunityMembersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		communityID := chi.URLParam(r, "communityId")
		if _, err := uuid.Parse(communityID); err != nil {
			respondWithError(w, http.StatusBadRequest, "communityId must be a valid id")
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertCommunityVisible(r.Context(), claims.UserID, communityID); err != nil {
			respondWithServiceError(w, err)
			return
		}

		memberships, err := deps.Services.Community.GetCommunityMemberships(r.Context(), communityID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		members := make([]responses.CommunityMember, 0, len(memberships))
		for _, membership := range memberships {
			user, err := deps.Services.User.GetUser(r.Context(), membership.UserID)
			if err != nil {
				respondWithServiceError(w, err)
				return
			}
			members = append(members, responses.CommunityMember{
				UserID:     user.ID,
				FirstName:  user.FirstName,
				LastName:   user.LastName,
				Membership: membership.Status,
			})
		}
		respondWithSuccess(w, http.StatusOK, &members)
	}
}

// CreateCommunityHandler handles POST /communities. Two writes: the
// community row, then the creator's ADMIN membership.
func CreateCommunityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateCommunityRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		community := req.ToNewCommunity()
		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Community.SaveCommunity(r.Context(), community); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := deps.Services.Community.CreateAdminMembership(r.Context(), community.ID, claims.UserID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, community)
	}
}

// InviteToCommunityHandler handles POST /communities/invite
func InviteToCommunityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CommunityInviteRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertCommunityAdmin(r.Context(), claims.UserID, req.Community); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := deps.Services.Auth.AssertInviteesAreFriends(r.Context(), claims.UserID, req.Invitees); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := deps.Services.Community.InviteUsers(r.Context(), req.Community, req.Invitees); err != nil {
			respondWithServiceError(w, err)
			return
		}
		countDeliveries(deps, deps.Services.Notification.SendCommunityInviteNotifications(r.Context(), claims.UserID, req.Community, req.Invitees))

		respondWithSuccess(w, http.StatusCreated, &responses.MessageResponse{Message: "Community invites sent"})
	}
}

// AcceptCommunityInviteHandler handles POST /communities/accept
func AcceptCommunityInviteHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CommunityObject
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Community.AcceptMembership(r.Context(), claims.UserID, req.Community); err != nil {
			respondWithServiceError(w, err)
			return
		}
		deps.Metrics.MembershipsAcceptedTotal.Inc()
		countDeliveries(deps, deps.Services.Notification.SendMembershipAcceptedNotifications(r.Context(), claims.UserID, req.Community))

		respondWithSuccess(w, http.StatusOK, &responses.MessageResponse{Message: "Community invite accepted"})
	}
}

// EditCommunityHandler handles PUT /communities
func EditCommunityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateCommunityRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertCommunityAdmin(r.Context(), claims.UserID, req.Community); err != nil {
			respondWithServiceError(w, err)
			return
		}

		community := req.ToCommunity()
		if err := deps.Services.Community.UpdateCommunity(r.Context(), community); err != nil {
			respondWithServiceError(w, err)
			return
		}
		countDeliveries(deps, deps.Services.Notification.SendCommunityUpdateNotifications(r.Context(), claims.UserID, community.ID))

		respondWithSuccess(w, http.StatusOK, community)
	}
}
