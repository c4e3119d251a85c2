package entities

import (
	"time"

	"gathergrid/commune/internal/constants"
)

// Attendance links a user to an event. Rows are only created by an invite
// (or by a community member attending a community event); the status is
// overwritten freely afterwards. One row per (user, event).
type Attendance struct {
	ID          string                     `db:"id" json:"id"`
	EventID     string                     `db:"event_id" json:"event"`
	UserID      string                     `db:"user_id" json:"user"`
	Status      constants.AttendanceStatus `db:"status" json:"status"`
	LastUpdated time.Time                  `db:"last_updated" json:"lastUpdated"`
}
