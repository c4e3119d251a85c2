package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type FriendshipRepository struct {
	db *sqlx.DB
}

func NewFriendshipRepository(db *sqlx.DB) *FriendshipRepository {
	return &FriendshipRepository{db}
}

func (r *FriendshipRepository) Insert(ctx context.Context, friendship *entities.Friendship) error {
	_, err := r.db.ExecContext(ctx, constants.InsertFriendship,
		friendship.ID,
		friendship.RecipientID,
		friendship.SenderID,
		friendship.Status,
		friendship.CreatedAt,
	)
	return err
}

// FindByPair looks up the row in the exact (recipient, sender) role order.
// Returns (nil, nil) when no row matches.
func (r *FriendshipRepository) FindByPair(ctx context.Context, recipientID, senderID string) (*entities.Friendship, error) {
	var friendship entities.Friendship
	err := r.db.QueryRowxContext(ctx, constants.GetFriendshipByPair, recipientID, senderID).StructScan(&friendship)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *FriendshipRepository) FindByRecipient(ctx context.Context, userID string) ([]entities.Friendship, error) {
	var friendships []entities.Friendship
	if err := r.db.SelectContext(ctx, &friendships, constants.GetFriendshipsByRecipient, userID); err != nil {
		return nil, err
	}
	return friendships, nil
}

func (r *FriendshipRepository) FindBySender(ctx context.Context, userID string) ([]entities.Friendship, error) {
	var friendships []entities.Friendship
	if err := r.db.SelectContext(ctx, &friendships, constants.GetFriendshipsBySender, userID); err != nil {
		return nil, err
	}
	return friendships, nil
}

func (r *FriendshipRepository) UpdateStatus(ctx context.Context, id string, status constants.FriendshipStatus) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateFriendshipStatus, id, status)
	return err
}
