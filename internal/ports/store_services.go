package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// UserService — операции над пользователями со стороны транспорта.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

// ProductService — операции над товарами со стороны транспорта.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) error
}

// PurchaseService — операции над покупками со стороны транспорта.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, purchase *domain.Purchase) error
	GetPurchase(ctx context.Context, id string) (*domain.PurchaseDetails, error)
	DeletePurchase(ctx context.Context, id string) error
}
