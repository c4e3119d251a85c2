package services

import (
	"context"
	"time"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// Store contracts consumed by the services. The sqlx repositories implement
// them for Postgres, the GORM repositories for sqlite. Single-row lookups
// return (nil, nil) when nothing matches; absence is a domain condition here,
// not an error. No call spans more than one row atomically.

type UserStore interface {
	Insert(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdateProfile(ctx context.Context, user *entities.User) error
}

type FriendshipStore interface {
	Insert(ctx context.Context, friendship *entities.Friendship) error
	// FindByPair looks up the exact (recipient, sender) role order.
	FindByPair(ctx context.Context, recipientID, senderID string) (*entities.Friendship, error)
	FindByRecipient(ctx context.Context, userID string) ([]entities.Friendship, error)
	FindBySender(ctx context.Context, userID string) ([]entities.Friendship, error)
	UpdateStatus(ctx context.Context, id string, status constants.FriendshipStatus) error
}

type MembershipStore interface {
	Insert(ctx context.Context, membership *entities.Membership) error
	FindByUserAndCommunity(ctx context.Context, userID, communityID string) (*entities.Membership, error)
	FindByCommunity(ctx context.Context, communityID string) ([]entities.Membership, error)
	FindByUser(ctx context.Context, userID string) ([]entities.Membership, error)
	UpdateStatus(ctx context.Context, id string, status constants.MembershipStatus) error
}

type AttendanceStore interface {
	Insert(ctx context.Context, attendance *entities.Attendance) error
	FindByUserAndEvent(ctx context.Context, userID, eventID string) (*entities.Attendance, error)
	FindByEvent(ctx context.Context, eventID string) ([]entities.Attendance, error)
	FindByUser(ctx context.Context, userID string) ([]entities.Attendance, error)
	UpdateStatus(ctx context.Context, id string, status constants.AttendanceStatus, lastUpdated time.Time) error
}

type CommunityStore interface {
	Insert(ctx context.Context, community *entities.Community) error
	FindByID(ctx context.Context, id string) (*entities.Community, error)
	Update(ctx context.Context, community *entities.Community) error
}

type EventStore interface {
	Insert(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindByCommunity(ctx context.Context, communityID string) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
}

type NotificationStore interface {
	Insert(ctx context.Context, notification *entities.Notification) error
	FindByReceiver(ctx context.Context, userID string) ([]entities.Notification, error)
}
