package contract

import (
	"context"

	"sports-academy-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository works on models directly; notifications are a thin
// delivery-history table with no domain behavior worth an entity layer.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindAllForUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
}
