package usecase

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что ProductService удовлетворяет интерфейсу ports.ProductService.
var _ ports.ProductService = (*ProductService)(nil)

// ProductService — прикладная логика работы с каталогом товаров.
type ProductService struct {
	repo ports.ProductRepository
	log  ports.Logger
}

// NewProductService — DI-конструктор.
func NewProductService(repo ports.ProductRepository, log ports.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// ListProducts — все товары.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List products failed err=%v", err)
		return nil, wrapStoreErr("list products", err)
	}
	return products, nil
}

// SearchProducts — подстрочный поиск по имени без учёта регистра.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		s.log.Errorf(ctx, "search products failed q=%q err=%v", query, err)
		return nil, wrapStoreErr("search products", err)
	}
	return products, nil
}

// CreateProduct — вставка нового товара; занятый id → domain.ErrConflict.
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Warnf(ctx, "create product failed id=%s err=%v", product.ID, err)
		return wrapStoreErr("create product", err)
	}
	s.log.Infof(ctx, "product created id=%s", product.ID)
	return nil
}

// UpdateProduct — частичное обновление: применяются только переданные поля,
// включая ноль и пустую строку. Отсутствующий товар → domain.ErrNotFound.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) error {
	if err := s.repo.Update(ctx, id, upd); err != nil {
		s.log.Warnf(ctx, "update product failed id=%s err=%v", id, err)
		return wrapStoreErr("update product", err)
	}
	s.log.Infof(ctx, "product updated id=%s", id)
	return nil
}
