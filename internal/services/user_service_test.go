package services

import (
	"context"
	"errors"
	"testing"

	"gathergrid/commune/internal/common"
)

func TestRequestFriendship_CreatesRequestedRow(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	recipient := insertTestUser(t, stores, "recipient-user")
	sender := insertTestUser(t, stores, "sender-user")

	if err := svc.RequestFriendship(context.Background(), recipient.ID, sender.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	pending, err := svc.PendingInviteExists(context.Background(), recipient.ID, sender.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !pending {
		t.Error("expected a pending invite for the exact role order")
	}

	// The inverse role order holds no pending invite.
	pending, err = svc.PendingInviteExists(context.Background(), sender.ID, recipient.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pending {
		t.Error("expected no pending invite in the inverse role order")
	}
}

func TestRequestFriendship_SelfIsRejected(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	user := insertTestUser(t, stores, "lonely-user")

	err := svc.RequestFriendship(context.Background(), user.ID, user.ID)
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRequestFriendship_DuplicateEitherDirectionConflicts(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	alice := insertTestUser(t, stores, "alice-user")
	bob := insertTestUser(t, stores, "bob-user")

	if err := svc.RequestFriendship(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.RequestFriendship(context.Background(), alice.ID, bob.ID); !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict on same direction, got %v", err)
	}
	if err := svc.RequestFriendship(context.Background(), bob.ID, alice.ID); !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict on inverse direction, got %v", err)
	}
}

func TestAcceptFriendship_OnlyRecipientCanAccept(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	recipient := insertTestUser(t, stores, "recipient-user")
	sender := insertTestUser(t, stores, "sender-user")

	if err := svc.RequestFriendship(context.Background(), recipient.ID, sender.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The sender accepting their own request looks up the inverse role
	// order, finds nothing, and is forbidden.
	err := svc.AcceptFriendship(context.Background(), sender.ID, recipient.ID)
	if !errors.Is(err, common.ErrAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}

	if err := svc.AcceptFriendship(context.Background(), recipient.ID, sender.ID); err != nil {
		t.Fatalf("expected recipient to accept, got %v", err)
	}

	friends, err := svc.AreFriends(context.Background(), recipient.ID, sender.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !friends {
		t.Error("expected users to be friends after acceptance")
	}
}

func TestAcceptFriendship_TwiceIsForbidden(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	recipient := insertTestUser(t, stores, "recipient-user")
	sender := insertTestUser(t, stores, "sender-user")

	if err := svc.RequestFriendship(context.Background(), recipient.ID, sender.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.AcceptFriendship(context.Background(), recipient.ID, sender.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := svc.AcceptFriendship(context.Background(), recipient.ID, sender.ID)
	if !errors.Is(err, common.ErrAuthorization) {
		t.Errorf("expected authorization error on second accept, got %v", err)
	}
}

func TestAreFriends_IsSymmetric(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	alice := insertTestUser(t, stores, "alice-user")
	bob := insertTestUser(t, stores, "bob-user")

	if err := svc.RequestFriendship(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.AcceptFriendship(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, pair := range [][2]string{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		friends, err := svc.AreFriends(context.Background(), pair[0], pair[1])
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !friends {
			t.Errorf("expected AreFriends(%s, %s) to be true", pair[0], pair[1])
		}
	}
}

func TestGetFriends_ExcludesPendingRequests(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	alice := insertTestUser(t, stores, "alice-user")
	bob := insertTestUser(t, stores, "bob-user")
	carol := insertTestUser(t, stores, "carol-user")

	// bob is accepted, carol is still pending.
	if err := svc.RequestFriendship(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.AcceptFriendship(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.RequestFriendship(context.Background(), alice.ID, carol.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	friends, err := svc.GetFriends(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("expected exactly one friend, got %d", len(friends))
	}
	if friends[0].ID != bob.ID {
		t.Errorf("expected friend %s, got %s", bob.ID, friends[0].ID)
	}
	if friends[0].HashedPassword != "" {
		t.Error("expected private data to be stripped")
	}
}

func TestGetFriendRequests_OnlyRecipientSide(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	alice := insertTestUser(t, stores, "alice-user")
	bob := insertTestUser(t, stores, "bob-user")
	carol := insertTestUser(t, stores, "carol-user")

	// bob asked alice; alice asked carol.
	if err := svc.RequestFriendship(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.RequestFriendship(context.Background(), carol.ID, alice.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	requests, err := svc.GetFriendRequests(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(requests))
	}
	if requests[0].ID != bob.ID {
		t.Errorf("expected sender %s, got %s", bob.ID, requests[0].ID)
	}
}

func TestInsertUser_DuplicateUsernameConflicts(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)
	existing := insertTestUser(t, stores, "taken-name")

	duplicate := *existing
	duplicate.ID = "another-id"
	err := svc.InsertUser(context.Background(), &duplicate)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestGetUser_MissingIsForbidden(t *testing.T) {
	stores := newTestStores(t)
	svc := newTestUserService(stores)

	_, err := svc.GetUser(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, common.ErrAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
}
