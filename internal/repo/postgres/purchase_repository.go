package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что PurchaseRepository удовлетворяет интерфейсу ports.PurchaseRepository.
var _ ports.PurchaseRepository = (*PurchaseRepository)(nil)

// PurchaseRepository — реализация репозитория покупок на Postgres (pgxpool).
// Заголовок и позиции живут в purchases / purchases_products и меняются
// только вместе, одной транзакцией.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository — конструктор PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// Exists — проверка наличия покупки по id.
func (r *PurchaseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM purchases WHERE id = $1)
	`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists purchase: %w", err)
	}
	return exists, nil
}

// Create — транзакционная вставка заголовка и всех позиций.
// created_at назначает сервер (DEFAULT now()). Любая ошибка откатывает всё.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	if purchase == nil || purchase.ID == "" {
		return errors.New("purchase is empty or id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) Заголовок покупки.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO purchases (id, buyer, total_price, paid)
		VALUES ($1, $2, $3, $4)
	`, purchase.ID, purchase.Buyer, purchase.TotalPrice, purchase.Paid); err != nil {
		if isPgErr(err, codeUniqueViolation) {
			return fmt.Errorf("%w: purchase %q", domain.ErrConflict, purchase.ID)
		}
		if isPgErr(err, codeForeignKeyViolation) {
			return fmt.Errorf("%w: buyer %q", domain.ErrNotFound, purchase.Buyer)
		}
		return fmt.Errorf("insert purchase: %w", err)
	}

	// 2) Позиции через COPY (быстрее, чем INSERT в цикле).
	if len(purchase.Lines) > 0 {
		if err = copyLines(ctx, transaction, purchase.ID, purchase.Lines); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetDetails — заголовок с данными покупателя + позиции с данными товаров.
// Если покупки нет, возвращает (nil, nil).
func (r *PurchaseRepository) GetDetails(ctx context.Context, id string) (*domain.PurchaseDetails, error) {
	var details domain.PurchaseDetails

	// Заголовок + покупатель (1:1).
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.total_price, p.buyer, u.name, u.email
		FROM purchases p
		JOIN users u ON u.id = p.buyer
		WHERE p.id = $1
	`, id).Scan(
		&details.Purchase.ID, &details.Purchase.TotalPrice, &details.Purchase.Buyer,
		&details.Purchase.BuyerName, &details.Purchase.BuyerEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select purchase: %w", err)
	}

	// Позиции + товары (0..N), стабильный порядок по product_id.
	rows, err := r.pool.Query(ctx, `
		SELECT pr.id, pr.name, pr.price, pr.description, pr.image_url, pp.quantity
		FROM purchases_products pp
		JOIN products pr ON pr.id = pp.product_id
		WHERE pp.purchase_id = $1
		ORDER BY pp.product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select purchase items: %w", err)
	}
	defer rows.Close()

	details.Products = make([]domain.PurchaseItem, 0)
	for rows.Next() {
		var item domain.PurchaseItem
		if err := rows.Scan(
			&item.ProductID, &item.Name, &item.Price, &item.Description, &item.ImageURL, &item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		details.Products = append(details.Products, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchase items rows: %w", err)
	}

	return &details, nil
}

// Delete — транзакционное удаление позиций и заголовка.
// Возвращает false, если покупки не было.
func (r *PurchaseRepository) Delete(ctx context.Context, id string) (bool, error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// Сначала позиции (FK), затем заголовок.
	if _, err := transaction.Exec(ctx, `
		DELETE FROM purchases_products WHERE purchase_id = $1
	`, id); err != nil {
		return false, fmt.Errorf("delete purchase items: %w", err)
	}

	tag, err := transaction.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete purchase: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// copyLines — вставка позиций через COPY (CopyFromRows).
func copyLines(ctx context.Context, tx pgx.Tx, purchaseID string, lines []domain.PurchaseLine) error {
	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{purchaseID, line.ProductID, line.Quantity})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"purchases_products"},
		[]string{"purchase_id", "product_id", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if isPgErr(err, codeForeignKeyViolation) {
			return fmt.Errorf("%w: purchase lines", domain.ErrUnknownProduct)
		}
		return fmt.Errorf("copy purchase lines: %w", err)
	}
	return nil
}
