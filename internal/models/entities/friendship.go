package entities

import (
	"time"

	"gathergrid/commune/internal/constants"
)

// Friendship is a directional pair: RecipientID is the user who was asked
// and is the only one who may accept; SenderID is the user who asked.
// At most one row exists per unordered pair, in either direction.
type Friendship struct {
	ID          string                     `db:"id" json:"id"`
	RecipientID string                     `db:"recipient_id" json:"recipientId"`
	SenderID    string                     `db:"sender_id" json:"senderId"`
	Status      constants.FriendshipStatus `db:"status" json:"status"`
	CreatedAt   time.Time                  `db:"created_at" json:"dateCreated"`
}

// Other returns the counterpart of userID in the pair.
func (f *Friendship) Other(userID string) string {
	if f.RecipientID == userID {
		return f.SenderID
	}
	return f.RecipientID
}
