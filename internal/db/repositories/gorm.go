package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

// GORM-backed counterparts of the sqlx repositories. They implement the same
// store interfaces and back the sqlite driver used for local development and
// service tests.

type UserRepositoryGORM struct {
	db *gorm.DB
}

func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db}
}

func (r *UserRepositoryGORM) Insert(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepositoryGORM) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryGORM) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryGORM) UpdateProfile(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", user.ID).
		Select("first_name", "last_name", "date_of_birth", "bio").
		Updates(user).Error
}

type FriendshipRepositoryGORM struct {
	db *gorm.DB
}

func NewFriendshipRepositoryGORM(db *gorm.DB) *FriendshipRepositoryGORM {
	return &FriendshipRepositoryGORM{db}
}

func (r *FriendshipRepositoryGORM) Insert(ctx context.Context, friendship *entities.Friendship) error {
	return r.db.WithContext(ctx).Create(friendship).Error
}

func (r *FriendshipRepositoryGORM) FindByPair(ctx context.Context, recipientID, senderID string) (*entities.Friendship, error) {
	var friendship entities.Friendship
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND sender_id = ?", recipientID, senderID).
		First(&friendship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *FriendshipRepositoryGORM) FindByRecipient(ctx context.Context, userID string) ([]entities.Friendship, error) {
	var friendships []entities.Friendship
	err := r.db.WithContext(ctx).Where("recipient_id = ?", userID).Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryGORM) FindBySender(ctx context.Context, userID string) ([]entities.Friendship, error) {
	var friendships []entities.Friendship
	err := r.db.WithContext(ctx).Where("sender_id = ?", userID).Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryGORM) UpdateStatus(ctx context.Context, id string, status constants.FriendshipStatus) error {
	return r.db.WithContext(ctx).Model(&entities.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
}

type MembershipRepositoryGORM struct {
	db *gorm.DB
}

func NewMembershipRepositoryGORM(db *gorm.DB) *MembershipRepositoryGORM {
	return &MembershipRepositoryGORM{db}
}

func (r *MembershipRepositoryGORM) Insert(ctx context.Context, membership *entities.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *MembershipRepositoryGORM) FindByUserAndCommunity(ctx context.Context, userID, communityID string) (*entities.Membership, error) {
	var membership entities.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepositoryGORM) FindByCommunity(ctx context.Context, communityID string) ([]entities.Membership, error) {
	var memberships []entities.Membership
	err := r.db.WithContext(ctx).Where("community_id = ?", communityID).Find(&memberships).Error
	return memberships, err
}

func (r *MembershipRepositoryGORM) FindByUser(ctx context.Context, userID string) ([]entities.Membership, error) {
	var memberships []entities.Membership
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&memberships).Error
	return memberships, err
}

func (r *MembershipRepositoryGORM) UpdateStatus(ctx context.Context, id string, status constants.MembershipStatus) error {
	return r.db.WithContext(ctx).Model(&entities.Membership{}).
		Where("id = ?", id).
		Update("status", status).Error
}

type AttendanceRepositoryGORM struct {
	db *gorm.DB
}

func NewAttendanceRepositoryGORM(db *gorm.DB) *AttendanceRepositoryGORM {
	return &AttendanceRepositoryGORM{db}
}

func (r *AttendanceRepositoryGORM) Insert(ctx context.Context, attendance *entities.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *AttendanceRepositoryGORM) FindByUserAndEvent(ctx context.Context, userID, eventID string) (*entities.Attendance, error) {
	var attendance entities.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *AttendanceRepositoryGORM) FindByEvent(ctx context.Context, eventID string) ([]entities.Attendance, error) {
	var attendances []entities.Attendance
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&attendances).Error
	return attendances, err
}

func (r *AttendanceRepositoryGORM) FindByUser(ctx context.Context, userID string) ([]entities.Attendance, error) {
	var attendances []entities.Attendance
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&attendances).Error
	return attendances, err
}

func (r *AttendanceRepositoryGORM) UpdateStatus(ctx context.Context, id string, status constants.AttendanceStatus, lastUpdated time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "last_updated": lastUpdated}).Error
}

type CommunityRepositoryGORM struct {
	db *gorm.DB
}

func NewCommunityRepositoryGORM(db *gorm.DB) *CommunityRepositoryGORM {
	return &CommunityRepositoryGORM{db}
}

func (r *CommunityRepositoryGORM) Insert(ctx context.Context, community *entities.Community) error {
	return r.db.WithContext(ctx).Create(community).Error
}

func (r *CommunityRepositoryGORM) FindByID(ctx context.Context, id string) (*entities.Community, error) {
	var community entities.Community
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepositoryGORM) Update(ctx context.Context, community *entities.Community) error {
	return r.db.WithContext(ctx).Model(&entities.Community{}).
		Where("id = ?", community.ID).
		Select("name", "community_type").
		Updates(community).Error
}

type EventRepositoryGORM struct {
	db *gorm.DB
}

func NewEventRepositoryGORM(db *gorm.DB) *EventRepositoryGORM {
	return &EventRepositoryGORM{db}
}

func (r *EventRepositoryGORM) Insert(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepositoryGORM) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryGORM) FindByCommunity(ctx context.Context, communityID string) ([]entities.Event, error) {
	var events []entities.Event
	err := r.db.WithContext(ctx).Where("community_id = ?", communityID).Find(&events).Error
	return events, err
}

func (r *EventRepositoryGORM) Update(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Model(&entities.Event{}).
		Where("id = ?", event.ID).
		Select("name", "description", "start_time", "end_time").
		Updates(event).Error
}

type NotificationRepositoryGORM struct {
	db *gorm.DB
}

func NewNotificationRepositoryGORM(db *gorm.DB) *NotificationRepositoryGORM {
	return &NotificationRepositoryGORM{db}
}

func (r *NotificationRepositoryGORM) Insert(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepositoryGORM) FindByReceiver(ctx context.Context, userID string) ([]entities.Notification, error) {
	var notifications []entities.Notification
	err := r.db.WithContext(ctx).
		Where("receiver_id = ?", userID).
		Order("created_at ASC").
		Find(&notifications).Error
	return notifications, err
}
