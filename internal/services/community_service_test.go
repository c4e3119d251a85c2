package services

import (
	"context"
	"errors"
	"testing"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
)

func TestCreateAdminMembership_SingleAdminRow(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	creator := insertTestUser(t, stores, "creator-user")
	community := insertTestCommunity(t, stores, "book club")

	if err := svc.CreateAdminMembership(context.Background(), community.ID, creator.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	membership, err := svc.GetMembership(context.Background(), creator.ID, community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if membership.Status != constants.MembershipAdmin {
		t.Errorf("expected ADMIN, got %s", membership.Status)
	}

	// Inviting the admin again conflicts: one row per pair.
	err = svc.InviteUsers(context.Background(), community.ID, []string{creator.ID})
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestInviteUsers_BatchFailsBeforeAnyWrite(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	community := insertTestCommunity(t, stores, "book club")
	member := insertTestUser(t, stores, "member-user")
	fresh := insertTestUser(t, stores, "fresh-user")
	insertTestMembership(t, stores, community.ID, member.ID, constants.MembershipMember)

	err := svc.InviteUsers(context.Background(), community.ID, []string{fresh.ID, member.ID})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// The conflicting batch wrote nothing, fresh included.
	visible, err := svc.IsVisible(context.Background(), fresh.ID, community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if visible {
		t.Error("expected no membership row for the fresh user after a failed batch")
	}
}

func TestAcceptMembership_Transitions(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	community := insertTestCommunity(t, stores, "book club")
	invitee := insertTestUser(t, stores, "invitee-user")

	// No invite yet: forbidden.
	err := svc.AcceptMembership(context.Background(), invitee.ID, community.ID)
	if !errors.Is(err, common.ErrAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}

	if err := svc.InviteUsers(context.Background(), community.ID, []string{invitee.ID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.AcceptMembership(context.Background(), invitee.ID, community.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	membership, err := svc.GetMembership(context.Background(), invitee.ID, community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if membership.Status != constants.MembershipMember {
		t.Errorf("expected MEMBER, got %s", membership.Status)
	}

	// Accepting twice conflicts: the row is no longer INVITED.
	err = svc.AcceptMembership(context.Background(), invitee.ID, community.ID)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict on second accept, got %v", err)
	}
}

func TestMemberAndAdminIDs_ExcludesInvited(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	community := insertTestCommunity(t, stores, "book club")
	admin := insertTestUser(t, stores, "admin-user")
	member := insertTestUser(t, stores, "member-user")
	invited := insertTestUser(t, stores, "invited-user")
	insertTestMembership(t, stores, community.ID, admin.ID, constants.MembershipAdmin)
	insertTestMembership(t, stores, community.ID, member.ID, constants.MembershipMember)
	insertTestMembership(t, stores, community.ID, invited.ID, constants.MembershipInvited)

	ids, err := svc.MemberAndAdminIDs(context.Background(), community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	for _, id := range ids {
		if id == invited.ID {
			t.Error("expected INVITED user to be excluded")
		}
	}

	adminIDs, err := svc.AdminIDs(context.Background(), community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(adminIDs) != 1 || adminIDs[0] != admin.ID {
		t.Errorf("expected only the admin, got %v", adminIDs)
	}
}

func TestIsVisible_IncludesInvited(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	community := insertTestCommunity(t, stores, "book club")
	invited := insertTestUser(t, stores, "invited-user")
	stranger := insertTestUser(t, stores, "stranger-user")
	insertTestMembership(t, stores, community.ID, invited.ID, constants.MembershipInvited)

	visible, err := svc.IsVisible(context.Background(), invited.ID, community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !visible {
		t.Error("expected an INVITED row to grant visibility")
	}

	visible, err = svc.IsVisible(context.Background(), stranger.ID, community.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if visible {
		t.Error("expected no visibility without a membership row")
	}
}

func TestSaveCommunity_DuplicateConflicts(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	community := insertTestCommunity(t, stores, "book club")

	err := svc.SaveCommunity(context.Background(), community)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestCommunityIDsForUser_OnlyJoined(t *testing.T) {
	stores := newTestStores(t)
	svc := NewCommunityService(stores.communities, stores.memberships)
	joined := insertTestCommunity(t, stores, "joined club")
	pending := insertTestCommunity(t, stores, "pending club")
	user := insertTestUser(t, stores, "joiner-user")
	insertTestMembership(t, stores, joined.ID, user.ID, constants.MembershipMember)
	insertTestMembership(t, stores, pending.ID, user.ID, constants.MembershipInvited)

	ids, err := svc.CommunityIDsForUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 1 || ids[0] != joined.ID {
		t.Errorf("expected only the joined community, got %v", ids)
	}
}
