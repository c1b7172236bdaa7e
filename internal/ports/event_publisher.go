package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// EventPublisher — публикация событий жизненного цикла покупки.
// Ошибка публикации не должна приводить к отказу запроса.
type EventPublisher interface {
	PublishPurchaseCreated(ctx context.Context, purchase *domain.Purchase) error
	PublishPurchaseDeleted(ctx context.Context, purchaseID string) error
	Close() error
}
