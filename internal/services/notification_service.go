package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"gathergrid/commune/internal/logging"
	"gathergrid/commune/internal/models/entities"
)

// NotificationService fans notifications out to their recipients. Delivery
// is best-effort: a failed insert is logged and reported in the returned
// DeliveryResult, never surfaced to the caller, so the triggering mutation
// always stands regardless of notification outcomes.
type NotificationService struct {
	notifications NotificationStore
	communities   *CommunityService
	events        *EventService
}

func NewNotificationService(notifications NotificationStore, communities *CommunityService, events *EventService) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		communities:   communities,
		events:        events,
	}
}

// DeliveryResult records the outcome of one notification insert.
type DeliveryResult struct {
	ReceiverID string
	Type       string
	Err        error
}

// deliverAll inserts one batch per recipient. Batches run concurrently with
// each other; within a batch the inserts run in order, so a recipient who
// gets several notifications from one mutation sees them in the order the
// mutation produced them.
func (s *NotificationService) deliverAll(ctx context.Context, batches [][]*entities.Notification) []DeliveryResult {
	var (
		mu      sync.Mutex
		results []DeliveryResult
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			for _, n := range batch {
				err := n.Validate()
				if err == nil {
					err = s.notifications.Insert(gctx, n)
				}
				if err != nil {
					logging.Error("notification insert failed",
						"receiver", n.ReceiverID,
						"type", n.Type.String(),
						"error", err.Error(),
					)
				}
				mu.Lock()
				results = append(results, DeliveryResult{
					ReceiverID: n.ReceiverID,
					Type:       n.Type.String(),
					Err:        err,
				})
				mu.Unlock()
			}
			return nil
		})
	}
	// goroutines always return nil; failures live in results
	_ = g.Wait()
	return results
}

func (s *NotificationService) deliverOne(ctx context.Context, n *entities.Notification) []DeliveryResult {
	return s.deliverAll(ctx, [][]*entities.Notification{{n}})
}

// SendFriendRequestNotification notifies the recipient of a new request.
func (s *NotificationService) SendFriendRequestNotification(ctx context.Context, senderID, recipientID string) []DeliveryResult {
	return s.deliverOne(ctx, friendRequestReceived(senderID, recipientID))
}

// SendFriendAcceptNotification notifies the original sender that the
// recipient accepted.
func (s *NotificationService) SendFriendAcceptNotification(ctx context.Context, accepterID, originalSenderID string) []DeliveryResult {
	return s.deliverOne(ctx, friendRequestAccepted(accepterID, originalSenderID))
}

// SendCommunityInviteNotifications notifies each invitee.
func (s *NotificationService) SendCommunityInviteNotifications(ctx context.Context, senderID, communityID string, invitees []string) []DeliveryResult {
	batches := make([][]*entities.Notification, 0, len(invitees))
	for _, invitee := range invitees {
		batches = append(batches, []*entities.Notification{
			communityInviteReceived(senderID, invitee, communityID),
		})
	}
	return s.deliverAll(ctx, batches)
}

// SendMembershipAcceptedNotifications notifies every current admin that a
// user joined. Each admin receives two notifications in order: the
// friend-accept-shaped one first, then the community acceptance.
func (s *NotificationService) SendMembershipAcceptedNotifications(ctx context.Context, accepterID, communityID string) []DeliveryResult {
	adminIDs, err := s.communities.AdminIDs(ctx, communityID)
	if err != nil {
		logging.Error("membership accept fan-out: admin lookup failed",
			"community", communityID, "error", err.Error())
		return nil
	}
	batches := make([][]*entities.Notification, 0, len(adminIDs))
	for _, adminID := range adminIDs {
		batches = append(batches, []*entities.Notification{
			friendRequestAccepted(accepterID, adminID),
			communityInviteAccepted(accepterID, adminID, communityID),
		})
	}
	return s.deliverAll(ctx, batches)
}

// SendCommunityUpdateNotifications notifies everyone who has joined the
// community. INVITED-only users are not notified.
func (s *NotificationService) SendCommunityUpdateNotifications(ctx context.Context, editorID, communityID string) []DeliveryResult {
	memberIDs, err := s.communities.MemberAndAdminIDs(ctx, communityID)
	if err != nil {
		logging.Error("community update fan-out: member lookup failed",
			"community", communityID, "error", err.Error())
		return nil
	}
	batches := make([][]*entities.Notification, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		batches = append(batches, []*entities.Notification{
			communityEditted(editorID, memberID, communityID),
		})
	}
	return s.deliverAll(ctx, batches)
}

// SendCommunityEventNotifications notifies the community's members and
// admins that a new event was created.
func (s *NotificationService) SendCommunityEventNotifications(ctx context.Context, creatorID, communityID, eventID string) []DeliveryResult {
	memberIDs, err := s.communities.MemberAndAdminIDs(ctx, communityID)
	if err != nil {
		logging.Error("community event fan-out: member lookup failed",
			"community", communityID, "error", err.Error())
		return nil
	}
	batches := make([][]*entities.Notification, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		batches = append(batches, []*entities.Notification{
			communityEventCreated(creatorID, memberID, eventID),
		})
	}
	return s.deliverAll(ctx, batches)
}

// SendEventInviteNotifications notifies each invitee.
func (s *NotificationService) SendEventInviteNotifications(ctx context.Context, senderID, eventID string, invitees []string) []DeliveryResult {
	batches := make([][]*entities.Notification, 0, len(invitees))
	for _, invitee := range invitees {
		batches = append(batches, []*entities.Notification{
			eventInviteReceived(senderID, invitee, eventID),
		})
	}
	return s.deliverAll(ctx, batches)
}

// SendEventAttendanceNotification notifies the event creator that an
// attendee changed their status. The creator updating their own attendance
// still records one.
func (s *NotificationService) SendEventAttendanceNotification(ctx context.Context, attendeeID, eventID string) []DeliveryResult {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		logging.Error("attendance fan-out: event lookup failed",
			"event", eventID, "error", err.Error())
		return nil
	}
	return s.deliverOne(ctx, eventAttendanceUpdate(attendeeID, event.CreatorID, eventID))
}

// SendEventUpdateNotifications notifies the audience of an edited event:
// the community's members for a community event, otherwise the invite
// event's expected attendees (ATTENDING or HOPEFULLY).
func (s *NotificationService) SendEventUpdateNotifications(ctx context.Context, editorID string, event *entities.Event) []DeliveryResult {
	var (
		receiverIDs []string
		err         error
	)
	if event.IsCommunityEvent() {
		receiverIDs, err = s.communities.MemberAndAdminIDs(ctx, *event.CommunityID)
	} else {
		receiverIDs, err = s.events.ExpectedAttendeeIDs(ctx, event.ID)
	}
	if err != nil {
		logging.Error("event update fan-out: audience lookup failed",
			"event", event.ID, "error", err.Error())
		return nil
	}
	batches := make([][]*entities.Notification, 0, len(receiverIDs))
	for _, receiverID := range receiverIDs {
		batches = append(batches, []*entities.Notification{
			eventEditted(editorID, receiverID, event.ID),
		})
	}
	return s.deliverAll(ctx, batches)
}

// NotificationsForUser returns the user's notifications, oldest first.
func (s *NotificationService) NotificationsForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	return s.notifications.FindByReceiver(ctx, userID)
}
