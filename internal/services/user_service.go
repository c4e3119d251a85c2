package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/common"
	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/logging"
	"gathergrid/commune/internal/models/entities"
)

const usernameCacheTTL = 10 * time.Minute

// UserService owns user records and the friendship ledger. A friendship is a
// directional pair: the recipient was asked, the sender asked, and only the
// recipient may accept.
type UserService struct {
	users   UserStore
	friends FriendshipStore
	cache   common.CacheInterface
}

func NewUserService(users UserStore, friends FriendshipStore, cache common.CacheInterface) *UserService {
	return &UserService{
		users:   users,
		friends: friends,
		cache:   cache,
	}
}

func (s *UserService) InsertUser(ctx context.Context, user *entities.User) error {
	existing, err := s.users.FindByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.NewConflictError("InsertUser", "username already exists")
	}
	return s.users.Insert(ctx, user)
}

func (s *UserService) Login(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.NewAuthenticationError("Login", "username not recognised")
	}
	if !auth.CheckPassword(user.HashedPassword, password) {
		return nil, common.NewAuthenticationError("Login", "password does not match")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.NewAuthorizationError("GetUser", "user not found")
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user *entities.User) error {
	return s.users.UpdateProfile(ctx, user)
}

// UsernameToID resolves a username to its user id. Usernames are immutable,
// so resolutions are cached.
func (s *UserService) UsernameToID(ctx context.Context, username string) (string, error) {
	val, err := s.cache.GetOrSet("username_id:"+username, usernameCacheTTL, func() (any, error) {
		user, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, common.NewAuthorizationError("UsernameToID", "user not found")
		}
		return user.ID, nil
	})
	if err != nil {
		return "", err
	}
	id, ok := val.(string)
	if !ok {
		return "", common.NewAuthorizationError("UsernameToID", "user not found")
	}
	return id, nil
}

// RequestFriendship creates a REQUESTED row with recipientID as the role
// that must later accept. At most one row may exist per unordered pair, so
// both role orders are checked before the write.
func (s *UserService) RequestFriendship(ctx context.Context, recipientID, senderID string) error {
	if recipientID == senderID {
		return common.NewValidationError("RequestFriendship", "cannot send a friend request to yourself")
	}

	existing, err := s.friends.FindByPair(ctx, recipientID, senderID)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.NewConflictError("RequestFriendship", "friendship already exists")
	}

	inverse, err := s.friends.FindByPair(ctx, senderID, recipientID)
	if err != nil {
		return err
	}
	if inverse != nil {
		return common.NewConflictError("RequestFriendship", "friendship already exists")
	}

	friendship := &entities.Friendship{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Status:      constants.FriendshipRequested,
		CreatedAt:   time.Now(),
	}
	logging.Info("RequestFriendship - saving friendship",
		"recipient_id", recipientID, "sender_id", senderID)
	return s.friends.Insert(ctx, friendship)
}

// AcceptFriendship transitions REQUESTED to ACCEPTED. The lookup is keyed by
// the exact (recipient, sender) role order: only the original recipient,
// addressing the original sender, can accept.
func (s *UserService) AcceptFriendship(ctx context.Context, recipientID, senderID string) error {
	friendship, err := s.friends.FindByPair(ctx, recipientID, senderID)
	if err != nil {
		return err
	}
	if friendship == nil {
		return common.NewAuthorizationError("AcceptFriendship", "friendship does not exist")
	}
	if friendship.Status != constants.FriendshipRequested {
		return common.NewAuthorizationError("AcceptFriendship", "friendship is not awaiting acceptance")
	}
	return s.friends.UpdateStatus(ctx, friendship.ID, constants.FriendshipAccepted)
}

// AreFriends is symmetric: an ACCEPTED row in either role order qualifies.
func (s *UserService) AreFriends(ctx context.Context, userOne, userTwo string) (bool, error) {
	friendship, err := s.friends.FindByPair(ctx, userOne, userTwo)
	if err != nil {
		return false, err
	}
	if friendship != nil && friendship.Status == constants.FriendshipAccepted {
		return true, nil
	}

	inverse, err := s.friends.FindByPair(ctx, userTwo, userOne)
	if err != nil {
		return false, err
	}
	return inverse != nil && inverse.Status == constants.FriendshipAccepted, nil
}

// PendingInviteExists reports whether a REQUESTED row exists in the exact
// (recipient, sender) role order. Used for visibility checks only;
// acceptance goes through AcceptFriendship.
func (s *UserService) PendingInviteExists(ctx context.Context, recipientID, senderID string) (bool, error) {
	friendship, err := s.friends.FindByPair(ctx, recipientID, senderID)
	if err != nil {
		return false, err
	}
	return friendship != nil && friendship.Status == constants.FriendshipRequested, nil
}

// GetFriends returns the accepted friends of userID, whichever role order
// the rows were created in.
func (s *UserService) GetFriends(ctx context.Context, userID string) ([]entities.User, error) {
	asRecipient, err := s.friends.FindByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	asSender, err := s.friends.FindBySender(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]entities.User, 0)
	for _, friendship := range append(asRecipient, asSender...) {
		if friendship.Status != constants.FriendshipAccepted {
			continue
		}
		user, err := s.users.FindByID(ctx, friendship.Other(userID))
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		friends = append(friends, user.Sanitized())
	}
	return friends, nil
}

// GetFriendRequests returns the senders of REQUESTED rows where userID is
// the recipient, i.e. the requests waiting on userID's acceptance.
func (s *UserService) GetFriendRequests(ctx context.Context, userID string) ([]entities.User, error) {
	asRecipient, err := s.friends.FindByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	senders := make([]entities.User, 0)
	for _, friendship := range asRecipient {
		if friendship.Status != constants.FriendshipRequested {
			continue
		}
		user, err := s.users.FindByID(ctx, friendship.SenderID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		senders = append(senders, user.Sanitized())
	}
	return senders, nil
}
