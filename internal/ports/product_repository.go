package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ProductRepository — доступ к таблице товаров.
type ProductRepository interface {
	// List — все товары.
	List(ctx context.Context) ([]domain.Product, error)

	// SearchByName — подстрочный поиск по имени (без учёта регистра).
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)

	// Create — вставка нового товара; дубликат id → domain.ErrConflict.
	Create(ctx context.Context, product *domain.Product) error

	// Update — частичное обновление: применяются только переданные поля,
	// включая ноль и пустую строку. Отсутствующий товар → domain.ErrNotFound.
	Update(ctx context.Context, id string, upd domain.ProductUpdate) error

	// CountExisting — сколько из перечисленных id существует (по distinct-выборке).
	CountExisting(ctx context.Context, ids []string) (int, error)
}
