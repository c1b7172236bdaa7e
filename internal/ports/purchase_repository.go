package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// PurchaseRepository — доступ к агрегату покупки (заголовок + позиции).
// Все многострочные операции выполняются одной транзакцией: агрегат либо
// полностью виден, либо полностью отсутствует.
type PurchaseRepository interface {
	// Exists — проверка наличия покупки по id.
	Exists(ctx context.Context, id string) (bool, error)

	// Create — транзакционная вставка заголовка и всех позиций.
	// created_at назначается сервером. Откат целиком при любой ошибке.
	Create(ctx context.Context, purchase *domain.Purchase) error

	// GetDetails — заголовок с данными покупателя + позиции с данными товаров.
	// Если покупки нет, возвращает (nil, nil).
	GetDetails(ctx context.Context, id string) (*domain.PurchaseDetails, error)

	// Delete — транзакционное удаление позиций и заголовка.
	// Возвращает false, если покупки не было.
	Delete(ctx context.Context, id string) (bool, error)
}
