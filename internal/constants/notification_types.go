package constants

import (
	"database/sql/driver"
	"fmt"
)

// NotificationType mirrors the Postgres ENUM 'notification_type'.
// The EDITTED spellings are the historical wire values consumed by the
// mobile clients; they cannot be corrected without a breaking migration.
type NotificationType string

const (
	NotifFriendRequestReceived   NotificationType = "FRIEND_REQUEST_RECEIVED"
	NotifFriendRequestAccepted   NotificationType = "FRIEND_REQUEST_ACCEPTED"
	NotifEventInviteReceived     NotificationType = "EVENT_INVITE_RECEIVED"
	NotifEventAttendanceUpdate   NotificationType = "EVENT_ATTENDANCE_UPDATE"
	NotifEventEditted            NotificationType = "EVENT_EDITTED"
	NotifCommunityEventCreated   NotificationType = "COMMUNITY_EVENT_CREATED"
	NotifCommunityEditted        NotificationType = "COMMUNITY_EDITTED"
	NotifCommunityInviteReceived NotificationType = "COMMUNITY_INVITE_RECEIVED"
	NotifCommunityInviteAccepted NotificationType = "COMMUNITY_INVITE_ACCEPTED"
)

func (t NotificationType) String() string { return string(t) }

// Scan implements the sql.Scanner interface
func (t *NotificationType) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*t = NotificationType(v)
	case []byte:
		*t = NotificationType(v)
	default:
		return fmt.Errorf("NotificationType: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (t NotificationType) Value() (driver.Value, error) { return string(t), nil }
