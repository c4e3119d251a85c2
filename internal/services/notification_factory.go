package services

import (
	"time"

	"github.com/google/uuid"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// Factory helpers for the eight notification shapes. SubjectID carries the
// community or event the notification is about; friendship notifications
// leave it nil because the sender is the subject.

func newNotification(t constants.NotificationType, senderID, receiverID string, subjectID *string) *entities.Notification {
	return &entities.Notification{
		ID:         uuid.New().String(),
		Type:       t,
		SenderID:   senderID,
		ReceiverID: receiverID,
		SubjectID:  subjectID,
		CreatedAt:  time.Now(),
	}
}

func friendRequestReceived(senderID, receiverID string) *entities.Notification {
	return newNotification(constants.NotifFriendRequestReceived, senderID, receiverID, nil)
}

func friendRequestAccepted(senderID, receiverID string) *entities.Notification {
	return newNotification(constants.NotifFriendRequestAccepted, senderID, receiverID, nil)
}

func communityInviteReceived(senderID, receiverID, communityID string) *entities.Notification {
	return newNotification(constants.NotifCommunityInviteReceived, senderID, receiverID, &communityID)
}

func communityInviteAccepted(senderID, receiverID, communityID string) *entities.Notification {
	return newNotification(constants.NotifCommunityInviteAccepted, senderID, receiverID, &communityID)
}

func communityEditted(senderID, receiverID, communityID string) *entities.Notification {
	return newNotification(constants.NotifCommunityEditted, senderID, receiverID, &communityID)
}

func communityEventCreated(senderID, receiverID, eventID string) *entities.Notification {
	return newNotification(constants.NotifCommunityEventCreated, senderID, receiverID, &eventID)
}

func eventInviteReceived(senderID, receiverID, eventID string) *entities.Notification {
	return newNotification(constants.NotifEventInviteReceived, senderID, receiverID, &eventID)
}

func eventAttendanceUpdate(senderID, receiverID, eventID string) *entities.Notification {
	return newNotification(constants.NotifEventAttendanceUpdate, senderID, receiverID, &eventID)
}

func eventEditted(senderID, receiverID, eventID string) *entities.Notification {
	return newNotification(constants.NotifEventEditted, senderID, receiverID, &eventID)
}
