package entities

import (
	"time"

	"gathergrid/commune/internal/constants"
)

// Notification is an append-only advisory record. Created only as a side
// effect of another mutation and never updated afterwards.
type Notification struct {
	ID         string                     `db:"id" json:"id"`
	Type       constants.NotificationType `db:"notification_type" gorm:"column:notification_type" json:"notificationType"`
	SenderID   string                     `db:"sender_id" json:"senderId"`
	ReceiverID string                     `db:"receiver_id" json:"receiverId"`
	SubjectID  *string                    `db:"subject_id" json:"subjectId,omitempty"`
	CreatedAt  time.Time                  `db:"created_at" json:"dateCreated"`
}

// Validate checks the fields that must be present before a notification may
// be persisted. Fan-out treats a failure here like any other per-recipient
// insert failure: logged and skipped.
func (n *Notification) Validate() error {
	if n.ID == "" || n.Type == "" || n.SenderID == "" || n.ReceiverID == "" {
		return &IncompleteNotificationError{Notification: n}
	}
	return nil
}

type IncompleteNotificationError struct {
	Notification *Notification
}

func (e *IncompleteNotificationError) Error() string {
	return "notification is missing required fields"
}
