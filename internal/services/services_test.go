package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/db"
	"gathergrid/commune/internal/db/repositories"
	"gathergrid/commune/internal/models/entities"
)

// testStores wires the GORM repositories against an in-memory sqlite
// database, the same path local development uses.
type testStores struct {
	users         UserStore
	friendships   FriendshipStore
	memberships   MembershipStore
	attendances   AttendanceStore
	communities   CommunityStore
	events        EventStore
	notifications NotificationStore
}

func newTestStores(t *testing.T) *testStores {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return &testStores{
		users:         repositories.NewUserRepositoryGORM(conn),
		friendships:   repositories.NewFriendshipRepositoryGORM(conn),
		memberships:   repositories.NewMembershipRepositoryGORM(conn),
		attendances:   repositories.NewAttendanceRepositoryGORM(conn),
		communities:   repositories.NewCommunityRepositoryGORM(conn),
		events:        repositories.NewEventRepositoryGORM(conn),
		notifications: repositories.NewNotificationRepositoryGORM(conn),
	}
}

func newTestUserService(stores *testStores) *UserService {
	return NewUserService(stores.users, stores.friendships, common.NewCacheService(time.Minute, time.Minute))
}

func insertTestUser(t *testing.T, stores *testStores, username string) *entities.User {
	t.Helper()
	first := "Test"
	last := "User"
	dob := "1990-01-01"
	user := &entities.User{
		ID:             uuid.New().String(),
		Username:       username,
		HashedPassword: "not-a-real-hash",
		FirstName:      &first,
		LastName:       &last,
		DateOfBirth:    &dob,
		CreatedAt:      time.Now(),
	}
	if err := stores.users.Insert(context.Background(), user); err != nil {
		t.Fatalf("failed to insert user %s: %v", username, err)
	}
	return user
}

func insertTestCommunity(t *testing.T, stores *testStores, name string) *entities.Community {
	t.Helper()
	community := &entities.Community{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := stores.communities.Insert(context.Background(), community); err != nil {
		t.Fatalf("failed to insert community %s: %v", name, err)
	}
	return community
}

func insertTestMembership(t *testing.T, stores *testStores, communityID, userID string, status constants.MembershipStatus) *entities.Membership {
	t.Helper()
	membership := &entities.Membership{
		ID:          uuid.New().String(),
		CommunityID: communityID,
		UserID:      userID,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := stores.memberships.Insert(context.Background(), membership); err != nil {
		t.Fatalf("failed to insert membership: %v", err)
	}
	return membership
}

func insertTestEvent(t *testing.T, stores *testStores, creatorID string, communityID *string) *entities.Event {
	t.Helper()
	event := &entities.Event{
		ID:          uuid.New().String(),
		Name:        "test event",
		CreatorID:   creatorID,
		CommunityID: communityID,
		StartTime:   time.Now().Add(time.Hour),
		EndTime:     time.Now().Add(2 * time.Hour),
		CreatedAt:   time.Now(),
	}
	if err := stores.events.Insert(context.Background(), event); err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	return event
}

func insertTestAttendance(t *testing.T, stores *testStores, eventID, userID string, status constants.AttendanceStatus) *entities.Attendance {
	t.Helper()
	attendance := &entities.Attendance{
		ID:          uuid.New().String(),
		EventID:     eventID,
		UserID:      userID,
		Status:      status,
		LastUpdated: time.Now(),
	}
	if err := stores.attendances.Insert(context.Background(), attendance); err != nil {
		t.Fatalf("failed to insert attendance: %v", err)
	}
	return attendance
}
