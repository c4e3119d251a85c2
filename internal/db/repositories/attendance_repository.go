package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type AttendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db}
}

func (r *AttendanceRepository) Insert(ctx context.Context, attendance *entities.Attendance) error {
	_, err := r.db.ExecContext(ctx, constants.InsertAttendance,
		attendance.ID,
		attendance.EventID,
		attendance.UserID,
		attendance.Status,
		attendance.LastUpdated,
	)
	return err
}

// FindByUserAndEvent returns (nil, nil) when no row matches.
func (r *AttendanceRepository) FindByUserAndEvent(ctx context.Context, userID, eventID string) (*entities.Attendance, error) {
	var attendance entities.Attendance
	err := r.db.QueryRowxContext(ctx, constants.GetAttendanceByUserAndEvent, userID, eventID).StructScan(&attendance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *AttendanceRepository) FindByEvent(ctx context.Context, eventID string) ([]entities.Attendance, error) {
	var attendances []entities.Attendance
	if err := r.db.SelectContext(ctx, &attendances, constants.GetAttendancesByEvent, eventID); err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *AttendanceRepository) FindByUser(ctx context.Context, userID string) ([]entities.Attendance, error) {
	var attendances []entities.Attendance
	if err := r.db.SelectContext(ctx, &attendances, constants.GetAttendancesByUser, userID); err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id string, status constants.AttendanceStatus, lastUpdated time.Time) error {
	_, err := r.db.ExecContext(ctx, constants.UpdateAttendanceStatus, id, status, lastUpdated)
	return err
}
