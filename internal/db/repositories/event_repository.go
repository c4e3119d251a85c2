package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db}
}

func (r *EventRepository) Insert(ctx context.Context, event *entities.Event) error {
	_, err := r.db.ExecContext(ctx, constants.InsertEvent,
		event.ID,
		event.Name,
		event.Description,
		event.CreatorID,
		event.CommunityID,
		event.StartTime,
		event.EndTime,
		event.CreatedAt,
	)
	return err
}

// FindByID returns (nil, nil) when no row matches.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	var event entities.Event
	err := r.db.QueryRowxContext(ctx, constants.GetEventById, id).StructScan(&event)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindByCommunity(ctx context.Context, communityID string) ([]entities.Event, error) {
	var events []entities.Event
	if err := r.db.SelectContext(ctx, &events, constants.GetEventsByCommunity, communityID); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateEventRow,
		event.ID,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
	)
	return err
}
