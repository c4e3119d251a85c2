package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type MembershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db}
}

func (r *MembershipRepository) Insert(ctx context.Context, membership *entities.Membership) error {
	_, err := r.db.ExecContext(ctx, constants.InsertMembership,
		membership.ID,
		membership.CommunityID,
		membership.UserID,
		membership.Status,
		membership.CreatedAt,
	)
	return err
}

// FindByUserAndCommunity returns (nil, nil) when no row matches.
func (r *MembershipRepository) FindByUserAndCommunity(ctx context.Context, userID, communityID string) (*entities.Membership, error) {
	var membership entities.Membership
	err := r.db.QueryRowxContext(ctx, constants.GetMembershipByUserAndCommunity, userID, communityID).StructScan(&membership)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepository) FindByCommunity(ctx context.Context, communityID string) ([]entities.Membership, error) {
	var memberships []entities.Membership
	if err := r.db.SelectContext(ctx, &memberships, constants.GetMembershipsByCommunity, communityID); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *MembershipRepository) FindByUser(ctx context.Context, userID string) ([]entities.Membership, error) {
	var memberships []entities.Membership
	if err := r.db.SelectContext(ctx, &memberships, constants.GetMembershipsByUser, userID); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *MembershipRepository) UpdateStatus(ctx context.Context, id string, status constants.MembershipStatus) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateMembershipStatus, id, status)
	return err
}
