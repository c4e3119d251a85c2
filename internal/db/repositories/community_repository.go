package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type CommunityRepository struct {
	db *sqlx.DB
}

func NewCommunityRepository(db *sqlx.DB) *CommunityRepository {
	return &CommunityRepository{db}
}

func (r *CommunityRepository) Insert(ctx context.Context, community *entities.Community) error {
	_, err := r.db.ExecContext(ctx, constants.InsertCommunity,
		community.ID,
		community.Name,
		community.CommunityType,
		community.CreatedAt,
	)
	return err
}

// FindByID returns (nil, nil) when no row matches.
func (r *CommunityRepository) FindByID(ctx context.Context, id string) (*entities.Community, error) {
	var community entities.Community
	err := r.db.QueryRowxContext(ctx, constants.GetCommunityById, id).StructScan(&community)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepository) Update(ctx context.Context, community *entities.Community) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateCommunityRow,
		community.ID,
		community.Name,
		community.CommunityType,
	)
	return err
}
