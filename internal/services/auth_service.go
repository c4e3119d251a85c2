package services

import (
	"context"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// AuthService is the authorization engine: pure decision functions over the
// three ledgers. Each assertion either returns nil or exactly one typed
// error; nothing here mutates state.
type AuthService struct {
	users       *UserService
	communities *CommunityService
	events      *EventService
}

func NewAuthService(users *UserService, communities *CommunityService, events *EventService) *AuthService {
	return &AuthService{
		users:       users,
		communities: communities,
		events:      events,
	}
}

// CheckFullAccess reports whether the user's profile is complete.
func (s *AuthService) CheckFullAccess(user *entities.User) bool {
	return user.HasFullAccess()
}

// AssertFullAccess gates elevated operations on a complete profile: first
// name, last name and date of birth all populated.
func (s *AuthService) AssertFullAccess(user *entities.User) error {
	if user.HasFullAccess() {
		return nil
	}
	return common.NewAuthorizationError("AssertFullAccess", "profile is not complete")
}

// AssertUserVisible permits a user to view a profile when it is their own,
// they are accepted friends, or a friend request is pending between the two
// in either direction.
func (s *AuthService) AssertUserVisible(ctx context.Context, requesterID, targetID string) error {
	if requesterID == targetID {
		return nil
	}

	friends, err := s.users.AreFriends(ctx, requesterID, targetID)
	if err != nil {
		return err
	}
	if friends {
		return nil
	}

	pending, err := s.users.PendingInviteExists(ctx, requesterID, targetID)
	if err != nil {
		return err
	}
	if pending {
		return nil
	}
	pending, err = s.users.PendingInviteExists(ctx, targetID, requesterID)
	if err != nil {
		return err
	}
	if pending {
		return nil
	}

	return common.NewAuthorizationError("AssertUserVisible", "user is not visible")
}

// AssertInviteesAreFriends requires every invitee to be an accepted friend
// of the sender; the first miss forbids the whole call.
func (s *AuthService) AssertInviteesAreFriends(ctx context.Context, senderID string, invitees []string) error {
	for _, invitee := range invitees {
		friends, err := s.users.AreFriends(ctx, senderID, invitee)
		if err != nil {
			return err
		}
		if !friends {
			return common.NewAuthorizationError("AssertInviteesAreFriends", "invitee is not a friend")
		}
	}
	return nil
}

func (s *AuthService) AssertCommunityAdmin(ctx context.Context, userID, communityID string) error {
	membership, err := s.communities.GetMembership(ctx, userID, communityID)
	if err != nil {
		return err
	}
	if membership.Status != constants.MembershipAdmin {
		return common.NewAuthorizationError("AssertCommunityAdmin", "user is not a community admin")
	}
	return nil
}

func (s *AuthService) AssertCommunityMember(ctx context.Context, userID, communityID string) error {
	membership, err := s.communities.GetMembership(ctx, userID, communityID)
	if err != nil {
		return err
	}
	if membership.Status != constants.MembershipMember && membership.Status != constants.MembershipAdmin {
		return common.NewAuthorizationError("AssertCommunityMember", "user is not a community member")
	}
	return nil
}

// AssertCommunityVisible requires any membership row for the pair, INVITED
// included.
func (s *AuthService) AssertCommunityVisible(ctx context.Context, userID, communityID string) error {
	visible, err := s.communities.IsVisible(ctx, userID, communityID)
	if err != nil {
		return err
	}
	if !visible {
		return common.NewAuthorizationError("AssertCommunityVisible", "community is not visible")
	}
	return nil
}

func (s *AuthService) AssertEventCreator(ctx context.Context, eventID, userID string) error {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatorID != userID {
		return common.NewAuthorizationError("AssertEventCreator", "user is not the event creator")
	}
	return nil
}

// AssertCanInviteToEvent permits direct invites only on invite events: the
// caller must be the creator and the event must not belong to a community.
// Community events gather attendees through membership instead.
func (s *AuthService) AssertCanInviteToEvent(ctx context.Context, eventID, userID string) error {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatorID != userID {
		return common.NewAuthorizationError("AssertCanInviteToEvent", "user is not the event creator")
	}
	if event.IsCommunityEvent() {
		return common.NewValidationError("AssertCanInviteToEvent", "cannot invite users to a community event")
	}
	return nil
}
