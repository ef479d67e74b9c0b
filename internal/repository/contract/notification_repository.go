package contract

import (
	"context"

	"talentflow-be/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByRecipient(ctx context.Context, recipient string, limit, offset int) ([]*model.Notification, error)
	CountUnread(ctx context.Context, recipient string) (int64, error)
	MarkRead(ctx context.Context, id string, recipient string) error
	MarkAllRead(ctx context.Context, recipient string) error
	FindTypeByCode(ctx context.Context, code string) (*model.NotificationType, error)
}
