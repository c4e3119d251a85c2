package responses

import (
	"time"

	"gathergrid/commune/internal/constants"
)

// AccessTokenResponse carries a freshly issued token.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse acknowledges a mutation with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// CommunityMember is one row of the member listing: user identity joined
// with the membership status.
type CommunityMember struct {
	UserID     string                     `json:"userId"`
	FirstName  *string                    `json:"firstName,omitempty"`
	LastName   *string                    `json:"lastName,omitempty"`
	Membership constants.MembershipStatus `json:"membership"`
}

// EventAttendee is one row of the attendance listing.
type EventAttendee struct {
	UserID            string                     `json:"userId"`
	FirstName         *string                    `json:"firstName,omitempty"`
	LastName          *string                    `json:"lastName,omitempty"`
	Attendance        constants.AttendanceStatus `json:"attendance"`
	AttendanceUpdated time.Time                  `json:"attendanceUpdated"`
}

// AttendanceResponse echoes the status an attendance mutation set.
type AttendanceResponse struct {
	Attendance constants.AttendanceStatus `json:"attendance"`
}
