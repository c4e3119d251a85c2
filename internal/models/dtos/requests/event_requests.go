package requests

import (
	"time"

	"github.com/google/uuid"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

func parseEventTime(op, field, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, common.NewValidationError(op, field+" must be an ISO 8601 timestamp")
	}
	return t, nil
}

// CreateInviteEventRequest creates an event outside any community. Invitees
// are optional; an invite event with none is reachable only by its creator
// until invites are sent.
type CreateInviteEventRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Invitees    []string `json:"invitees"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`

	start time.Time
	end   time.Time
}

func (r *CreateInviteEventRequest) Validate() error {
	const op = "CreateInviteEventRequest"
	if r.Name == "" {
		return common.NewValidationError(op, "name is required")
	}
	for _, invitee := range r.Invitees {
		if !validUUID(invitee) {
			return common.NewValidationError(op, "invitees must be valid ids")
		}
	}
	var err error
	if r.start, err = parseEventTime(op, "startTime", r.StartTime); err != nil {
		return err
	}
	if r.end, err = parseEventTime(op, "endTime", r.EndTime); err != nil {
		return err
	}
	return nil
}

func (r *CreateInviteEventRequest) ToNewEvent(creatorID string) *entities.Event {
	return &entities.Event{
		ID:          uuid.New().String(),
		Name:        r.Name,
		Description: r.Description,
		CreatorID:   creatorID,
		StartTime:   r.start,
		EndTime:     r.end,
		CreatedAt:   time.Now(),
	}
}

type CreateCommunityEventRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Community   string  `json:"community"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`

	start time.Time
	end   time.Time
}

func (r *CreateCommunityEventRequest) Validate() error {
	const op = "CreateCommunityEventRequest"
	if r.Name == "" {
		return common.NewValidationError(op, "name is required")
	}
	if !validUUID(r.Community) {
		return common.NewValidationError(op, "community must be a valid id")
	}
	var err error
	if r.start, err = parseEventTime(op, "startTime", r.StartTime); err != nil {
		return err
	}
	if r.end, err = parseEventTime(op, "endTime", r.EndTime); err != nil {
		return err
	}
	return nil
}

func (r *CreateCommunityEventRequest) ToNewEvent(creatorID string) *entities.Event {
	return &entities.Event{
		ID:          uuid.New().String(),
		Name:        r.Name,
		Description: r.Description,
		CreatorID:   creatorID,
		CommunityID: &r.Community,
		StartTime:   r.start,
		EndTime:     r.end,
		CreatedAt:   time.Now(),
	}
}

type EventInviteRequest struct {
	Event    string   `json:"event"`
	Invitees []string `json:"invitees"`
}

func (r *EventInviteRequest) Validate() error {
	if !validUUID(r.Event) {
		return common.NewValidationError("EventInviteRequest", "event must be a valid id")
	}
	for _, invitee := range r.Invitees {
		if !validUUID(invitee) {
			return common.NewValidationError("EventInviteRequest", "invitees must be valid ids")
		}
	}
	return nil
}

type UpdateEventRequest struct {
	Event       string  `json:"event"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`

	start time.Time
	end   time.Time
}

func (r *UpdateEventRequest) Validate() error {
	const op = "UpdateEventRequest"
	if !validUUID(r.Event) {
		return common.NewValidationError(op, "event must be a valid id")
	}
	if r.Name == "" {
		return common.NewValidationError(op, "name is required")
	}
	var err error
	if r.start, err = parseEventTime(op, "startTime", r.StartTime); err != nil {
		return err
	}
	if r.end, err = parseEventTime(op, "endTime", r.EndTime); err != nil {
		return err
	}
	return nil
}

// ToEvent carries only the editable fields; creator and community are
// filled from the stored event before updating.
func (r *UpdateEventRequest) ToEvent() *entities.Event {
	return &entities.Event{
		ID:          r.Event,
		Name:        r.Name,
		Description: r.Description,
		StartTime:   r.start,
		EndTime:     r.end,
	}
}

// UpdateAttendanceRequest keeps the capitalised AttendanceStatus wire name
// the clients already send.
type UpdateAttendanceRequest struct {
	Event            string `json:"event"`
	AttendanceStatus string `json:"AttendanceStatus"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	if !validUUID(r.Event) {
		return common.NewValidationError("UpdateAttendanceRequest", "event must be a valid id")
	}
	if !constants.ValidAttendanceStatus(r.AttendanceStatus) {
		return common.NewValidationError("UpdateAttendanceRequest", "AttendanceStatus must be a valid attendance status")
	}
	return nil
}

// CreateCommunityEventAttendanceRequest registers the caller's own
// attendance on a community event.
type CreateCommunityEventAttendanceRequest struct {
	Event          string `json:"event"`
	AttendanceType string `json:"attendanceType"`
}

func (r *CreateCommunityEventAttendanceRequest) Validate() error {
	if r.Event == "" {
		return common.NewValidationError("CreateCommunityEventAttendanceRequest", "event is required")
	}
	if !constants.ValidAttendanceStatus(r.AttendanceType) {
		return common.NewValidationError("CreateCommunityEventAttendanceRequest", "attendanceType must be a valid attendance status")
	}
	return nil
}

func (r *CreateCommunityEventAttendanceRequest) ToNewAttendance(userID string) *entities.Attendance {
	return &entities.Attendance{
		ID:          uuid.New().String(),
		EventID:     r.Event,
		UserID:      userID,
		Status:      constants.AttendanceStatus(r.AttendanceType),
		LastUpdated: time.Now(),
	}
}
