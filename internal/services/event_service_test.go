package services

import (
	"context"
	"errors"
	"testing"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
)

func TestInviteUsers_EventBatchFailsBeforeAnyWrite(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)
	creator := insertTestUser(t, stores, "creator-user")
	event := insertTestEvent(t, stores, creator.ID, nil)
	invited := insertTestUser(t, stores, "invited-user")
	fresh := insertTestUser(t, stores, "fresh-user")
	insertTestAttendance(t, stores, event.ID, invited.ID, constants.AttendanceInvited)

	err := svc.InviteUsers(context.Background(), event.ID, []string{fresh.ID, invited.ID})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	attendances, err := svc.GetAttendances(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(attendances) != 1 {
		t.Errorf("expected the failed batch to write nothing, got %d rows", len(attendances))
	}
}

func TestInviteUsers_CreatesInvitedRows(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)
	creator := insertTestUser(t, stores, "creator-user")
	event := insertTestEvent(t, stores, creator.ID, nil)
	one := insertTestUser(t, stores, "one-user")
	two := insertTestUser(t, stores, "two-user")

	if err := svc.InviteUsers(context.Background(), event.ID, []string{one.ID, two.ID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	attendances, err := svc.GetAttendances(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(attendances) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(attendances))
	}
	for _, attendance := range attendances {
		if attendance.Status != constants.AttendanceInvited {
			t.Errorf("expected INVITED, got %s", attendance.Status)
		}
	}
}

func TestSetAttendance_OverwritesFreely(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)
	creator := insertTestUser(t, stores, "creator-user")
	attendee := insertTestUser(t, stores, "attendee-user")
	event := insertTestEvent(t, stores, creator.ID, nil)
	insertTestAttendance(t, stores, event.ID, attendee.ID, constants.AttendanceInvited)

	// Any status can replace any other, back and forth.
	for _, status := range []constants.AttendanceStatus{
		constants.AttendanceAttending,
		constants.AttendanceDeclined,
		constants.AttendanceHopefully,
		constants.AttendanceAttending,
	} {
		if err := svc.SetAttendance(context.Background(), attendee.ID, event.ID, status); err != nil {
			t.Fatalf("expected no error setting %s, got %v", status, err)
		}
	}

	attendances, err := svc.GetAttendances(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(attendances) != 1 || attendances[0].Status != constants.AttendanceAttending {
		t.Errorf("expected a single ATTENDING row, got %v", attendances)
	}
}

func TestSetAttendance_MissingRowIsForbidden(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)
	creator := insertTestUser(t, stores, "creator-user")
	stranger := insertTestUser(t, stores, "stranger-user")
	event := insertTestEvent(t, stores, creator.ID, nil)

	err := svc.SetAttendance(context.Background(), stranger.ID, event.ID, constants.AttendanceAttending)
	if !errors.Is(err, common.ErrAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
}

func TestCreateAttendance_DuplicateConflicts(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)
	creator := insertTestUser(t, stores, "creator-user")
	attendee := insertTestUser(t, stores, "attendee-user")
	event := insertTestEvent(t, stores, creator.ID, nil)
	existing := insertTestAttendance(t, stores, event.ID, attendee.ID, constants.AttendanceAttending)

	duplicate := *existing
	duplicate.ID = "another-id"
	err := svc.CreateAttendance(context.Background(), &duplicate)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestExpectedAttendeeIDs_FiltersStatuses(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)
	creator := insertTestUser(t, stores, "creator-user")
	event := insertTestEvent(t, stores, creator.ID, nil)
	attending := insertTestUser(t, stores, "attending-user")
	hopeful := insertTestUser(t, stores, "hopeful-user")
	declined := insertTestUser(t, stores, "declined-user")
	invited := insertTestUser(t, stores, "invited-user")
	insertTestAttendance(t, stores, event.ID, attending.ID, constants.AttendanceAttending)
	insertTestAttendance(t, stores, event.ID, hopeful.ID, constants.AttendanceHopefully)
	insertTestAttendance(t, stores, event.ID, declined.ID, constants.AttendanceDeclined)
	insertTestAttendance(t, stores, event.ID, invited.ID, constants.AttendanceInvited)

	ids, err := svc.ExpectedAttendeeIDs(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 expected attendees, got %d", len(ids))
	}
	for _, id := range ids {
		if id == declined.ID || id == invited.ID {
			t.Errorf("unexpected attendee %s", id)
		}
	}
}

func TestGetEvent_MissingIsForbidden(t *testing.T) {
	stores := newTestStores(t)
	svc := NewEventService(stores.events, stores.attendances)

	_, err := svc.GetEvent(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, common.ErrAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
}
