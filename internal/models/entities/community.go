package entities

import "time"

type Community struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	CommunityType *string   `db:"community_type" json:"communityType,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"dateCreated"`
}
