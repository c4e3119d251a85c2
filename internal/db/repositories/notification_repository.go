package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gathergrid/commune/internal/constants"
	"gathergrid/commune/internal/models/entities"
)

type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

func (r *NotificationRepository) Insert(ctx context.Context, notification *entities.Notification) error {
	_, err := r.db.ExecContext(ctx, constants.InsertNotification,
		notification.ID,
		notification.Type,
		notification.SenderID,
		notification.ReceiverID,
		notification.SubjectID,
		notification.CreatedAt,
	)
	return err
}

func (r *NotificationRepository) FindByReceiver(ctx context.Context, userID string) ([]entities.Notification, error) {
	var notifications []entities.Notification
	if err := r.db.SelectContext(ctx, &notifications, constants.GetNotificationsByReceiver, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}
