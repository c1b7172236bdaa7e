package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ports.ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — реализация репозитория товаров на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository — конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List — все товары.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, description, image_url
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return collectProducts(rows)
}

// SearchByName — подстрочный поиск по имени без учёта регистра (ILIKE).
func (r *ProductRepository) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, description, image_url
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return collectProducts(rows)
}

// Create — вставка нового товара; дубликат id → domain.ErrConflict.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
	`, product.ID, product.Name, product.Price, product.Description, product.ImageURL)
	if isPgErr(err, codeUniqueViolation) {
		return fmt.Errorf("%w: product %q", domain.ErrConflict, product.ID)
	}
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update — частичное обновление через COALESCE: непереданные поля (nil)
// сохраняют текущее значение, переданные ноль/пустая строка записываются.
// Отсутствующий товар → domain.ErrNotFound.
func (r *ProductRepository) Update(ctx context.Context, id string, upd domain.ProductUpdate) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products SET
			name        = COALESCE($2, name),
			price       = COALESCE($3, price),
			description = COALESCE($4, description),
			image_url   = COALESCE($5, image_url)
		WHERE id = $1
	`, id, upd.Name, upd.Price, upd.Description, upd.ImageURL)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %q", domain.ErrNotFound, id)
	}
	return nil
}

// CountExisting — сколько из перечисленных id есть в каталоге (distinct).
// Сравнение с длиной списка позиций отсекает и неизвестные, и повторяющиеся id.
func (r *ProductRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT id) FROM products WHERE id = ANY($1::text[])
	`, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Price, &product.Description, &product.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}
