package constants

import (
	"database/sql/driver"
	"fmt"
)

// FriendshipStatus mirrors the Postgres ENUM 'friendship_status'.
// A friendship only ever moves forward: REQUESTED -> ACCEPTED.
type FriendshipStatus string

const (
	FriendshipRequested FriendshipStatus = "REQUESTED"
	FriendshipAccepted  FriendshipStatus = "ACCEPTED"
)

func (s FriendshipStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *FriendshipStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = FriendshipStatus(v)
	case []byte:
		*s = FriendshipStatus(v)
	default:
		return fmt.Errorf("FriendshipStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s FriendshipStatus) Value() (driver.Value, error) { return string(s), nil }

// MembershipStatus mirrors the Postgres ENUM 'membership_status'.
// ADMIN is assigned once at community creation and is never reached
// by the invite flow; INVITED only ever moves to MEMBER.
type MembershipStatus string

const (
	MembershipInvited MembershipStatus = "INVITED"
	MembershipMember  MembershipStatus = "MEMBER"
	MembershipAdmin   MembershipStatus = "ADMIN"
)

func (s MembershipStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *MembershipStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = MembershipStatus(v)
	case []byte:
		*s = MembershipStatus(v)
	default:
		return fmt.Errorf("MembershipStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s MembershipStatus) Value() (driver.Value, error) { return string(s), nil }

// AttendanceStatus mirrors the Postgres ENUM 'attendance_status'.
// Rows are created as INVITED and the status is freely mutable afterwards.
type AttendanceStatus string

const (
	AttendanceAttending AttendanceStatus = "ATTENDING"
	AttendanceDeclined  AttendanceStatus = "DECLINED"
	AttendanceHopefully AttendanceStatus = "HOPEFULLY"
	AttendanceInvited   AttendanceStatus = "INVITED"
)

func (s AttendanceStatus) String() string { return string(s) }

// ValidAttendanceStatus reports whether v is one of the accepted wire values.
func ValidAttendanceStatus(v string) bool {
	switch AttendanceStatus(v) {
	case AttendanceAttending, AttendanceDeclined, AttendanceHopefully, AttendanceInvited:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface
func (s *AttendanceStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = AttendanceStatus(v)
	case []byte:
		*s = AttendanceStatus(v)
	default:
		return fmt.Errorf("AttendanceStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s AttendanceStatus) Value() (driver.Value, error) { return string(s), nil }
