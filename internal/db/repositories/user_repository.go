package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Insert(ctx context.Context, user *entities.User) error {
	_, err := r.db.ExecContext(ctx, constants.InsertUser,
		user.ID,
		user.Username,
		user.HashedPassword,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Bio,
		user.CreatedAt,
	)
	return err
}

// FindByID returns (nil, nil) when no row matches.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRowxContext(ctx, constants.GetUserById, id).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRowxContext(ctx, constants.GetUserByUsername, username).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *entities.User) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateUserProfile,
		user.ID,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Bio,
	)
	return err
}
