package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// UserRepository — доступ к таблице пользователей.
type UserRepository interface {
	// List — все пользователи в порядке создания.
	List(ctx context.Context) ([]domain.User, error)

	// Create — вставка нового пользователя; дубликат id → domain.ErrConflict.
	Create(ctx context.Context, user *domain.User) error

	// Exists — проверка наличия пользователя по id.
	Exists(ctx context.Context, id string) (bool, error)
}
