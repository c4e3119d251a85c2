package entities

import (
	"time"

	"gathergrid/commune/internal/constants"
)

// Membership links a user to a community. One row per (user, community).
type Membership struct {
	ID          string                     `db:"id" json:"id"`
	CommunityID string                     `db:"community_id" json:"community"`
	UserID      string                     `db:"user_id" json:"user"`
	Status      constants.MembershipStatus `db:"status" json:"status"`
	CreatedAt   time.Time                  `db:"created_at" json:"dateCreated"`
}
