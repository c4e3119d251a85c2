package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/dtos/requests"
	"gathergrid/commune/internal/models/dtos/responses"
)

// GetEventsHandler handles GET /events: the caller's invite events plus
// every event of each community they have joined.
func GetEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetAccessClaims(r.Context())

		events, err := deps.Services.Event.InviteEventsForUser(r.Context(), claims.UserID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		communityIDs, err := deps.Services.Community.CommunityIDsForUser(r.Context(), claims.UserID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		for _, communityID := range communityIDs {
			communityEvents, err := deps.Services.Event.EventsForCommunity(r.Context(), communityID)
			if err != nil {
				respondWithServiceError(w, err)
				return
			}
			events = append(events, communityEvents...)
		}
		respondWithSuccess(w, http.StatusOK, &events)
	}
}

// GetEventHandler handles GET /events/{eventId}
func GetEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventId")
		if _, err := uuid.Parse(eventID); err != nil {
			respondWithError(w, http.StatusBadRequest, "eventId must be a valid id")
			return
		}

		event, err := deps.Services.Event.GetEvent(r.Context(), eventID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, event)
	}
}

// GetEventAttendanceHandler handles GET /events/{eventId}/attendance
func GetEventAttendanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventId")
		if _, err := uuid.Parse(eventID); err != nil {
			respondWithError(w, http.StatusBadRequest, "eventId must be a valid id")
			return
		}

		attendances, err := deps.Services.Event.GetAttendances(r.Context(), eventID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		attendees := make([]responses.EventAttendee, 0, len(attendances))
		for _, attendance := range attendances {
			user, err := deps.Services.User.GetUser(r.Context(), attendance.UserID)
			if err != nil {
				respondWithServiceError(w, err)
				return
			}
			attendees = append(attendees, responses.EventAttendee{
				UserID:            user.ID,
				FirstName:         user.FirstName,
				LastName:          user.LastName,
				Attendance:        attendance.Status,
				AttendanceUpdated: attendance.LastUpdated,
			})
		}
		respondWithSuccess(w, http.StatusOK, &attendees)
	}
}

// CreateInviteEventHandler handles POST /events/invite-event. Invitees are
// validated before the event is persisted, so a rejected invite list leaves
// no event behind.
func CreateInviteEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateInviteEventRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		event := req.ToNewEvent(claims.UserID)

		if len(req.Invitees) > 0 {
			if err := deps.Services.Auth.AssertInviteesAreFriends(r.Context(), claims.UserID, req.Invitees); err != nil {
				respondWithServiceError(w, err)
				return
			}
			if err := deps.Services.Event.SaveEvent(r.Context(), event); err != nil {
				respondWithServiceError(w, err)
				return
			}
			if err := deps.Services.Event.InviteUsers(r.Context(), event.ID, req.Invitees); err != nil {
				respondWithServiceError(w, err)
				return
			}
			countDeliveries(deps, deps.Services.Notification.SendEventInviteNotifications(r.Context(), claims.UserID, event.ID, req.Invitees))
		} else {
			if err := deps.Services.Event.SaveEvent(r.Context(), event); err != nil {
				respondWithServiceError(w, err)
				return
			}
		}
		respondWithSuccess(w, http.StatusCreated, event)
	}
}

// CreateCommunityEventHandler handles POST /events/community-event
func CreateCommunityEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateCommunityEventRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertCommunityMember(r.Context(), claims.UserID, req.Community); err != nil {
			respondWithServiceError(w, err)
			return
		}

		event := req.ToNewEvent(claims.UserID)
		if err := deps.Services.Event.SaveEvent(r.Context(), event); err != nil {
			respondWithServiceError(w, err)
			return
		}
		countDeliveries(deps, deps.Services.Notification.SendCommunityEventNotifications(r.Context(), claims.UserID, req.Community, event.ID))

		respondWithSuccess(w, http.StatusCreated, event)
	}
}

// CreateEventInvitesHandler handles POST /events/invite
func CreateEventInvitesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.EventInviteRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertCanInviteToEvent(r.Context(), req.Event, claims.UserID); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := deps.Services.Auth.AssertInviteesAreFriends(r.Context(), claims.UserID, req.Invitees); err != nil {
			respondWithServiceError(w, err)
			return
		}
		if err := deps.Services.Event.InviteUsers(r.Context(), req.Event, req.Invitees); err != nil {
			respondWithServiceError(w, err)
			return
		}
		countDeliveries(deps, deps.Services.Notification.SendEventInviteNotifications(r.Context(), claims.UserID, req.Event, req.Invitees))

		respondWithSuccess(w, http.StatusCreated, &responses.MessageResponse{Message: "Event invites sent"})
	}
}

// EditEventHandler handles PUT /events
func EditEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateEventRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		if err := deps.Services.Auth.AssertEventCreator(r.Context(), req.Event, claims.UserID); err != nil {
			respondWithServiceError(w, err)
			return
		}

		stored, err := deps.Services.Event.GetEvent(r.Context(), req.Event)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		event := req.ToEvent()
		event.CreatorID = stored.CreatorID
		event.CommunityID = stored.CommunityID
		event.CreatedAt = stored.CreatedAt

		if err := deps.Services.Event.UpdateEvent(r.Context(), event); err != nil {
			respondWithServiceError(w, err)
			return
		}
		countDeliveries(deps, deps.Services.Notification.SendEventUpdateNotifications(r.Context(), claims.UserID, event))

		respondWithSuccess(w, http.StatusOK, event)
	}
}

// CreateCommunityEventAttendanceHandler handles POST /events/attendance:
// a community member registers their own attendance on a community event.
func CreateCommunityEventAttendanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateCommunityEventAttendanceRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		event, err := deps.Services.Event.GetEvent(r.Context(), req.Event)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		if !event.IsCommunityEvent() {
			respondWithError(w, http.StatusForbidden, "cannot create community attendance for an event with no community")
			return
		}
		if err := deps.Services.Auth.AssertCommunityMember(r.Context(), claims.UserID, *event.CommunityID); err != nil {
			respondWithServiceError(w, err)
			return
		}

		attendance := req.ToNewAttendance(claims.UserID)
		if err := deps.Services.Event.CreateAttendance(r.Context(), attendance); err != nil {
			respondWithServiceError(w, err)
			return
		}
		deps.Metrics.AttendanceUpdatesTotal.Inc()
		countDeliveries(deps, deps.Services.Notification.SendEventAttendanceNotification(r.Context(), claims.UserID, event.ID))

		respondWithSuccess(w, http.StatusCreated, &responses.AttendanceResponse{Attendance: attendance.Status})
	}
}

// EditAttendanceHandler handles PUT /events/attendance
func EditAttendanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateAttendanceRequest
		if err := decodeBody(r, &req); err != nil {
			respondWithServiceError(w, err)
			return
		}

		claims := auth.GetAccessClaims(r.Context())
		status := constants.AttendanceStatus(req.AttendanceStatus)
		if err := deps.Services.Event.SetAttendance(r.Context(), claims.UserID, req.Event, status); err != nil {
			respondWithServiceError(w, err)
			return
		}
		deps.Metrics.AttendanceUpdatesTotal.Inc()
		countDeliveries(deps, deps.Services.Notification.SendEventAttendanceNotification(r.Context(), claims.UserID, req.Event))

		respondWithSuccess(w, http.StatusOK, &responses.AttendanceResponse{Attendance: status})
	}
}
