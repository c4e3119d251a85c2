package entities

import "time"

// Event is either a community event (CommunityID set, attendance open to
// members) or an invite event (no community, attendance by invitation only).
type Event struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatorID   string    `db:"creator_id" json:"creator"`
	CommunityID *string   `db:"community_id" json:"community,omitempty"`
	StartTime   time.Time `db:"start_time" json:"startTime"`
	EndTime     time.Time `db:"end_time" json:"endTime"`
	CreatedAt   time.Time `db:"created_at" json:"dateCreated"`
}

// IsCommunityEvent reports whether the event belongs to a community.
func (e *Event) IsCommunityEvent() bool {
	return e.CommunityID != nil && *e.CommunityID != ""
}
