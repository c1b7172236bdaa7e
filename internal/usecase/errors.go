package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// wrapStoreErr — переводит истечение контекста в domain.ErrTimeout,
// остальные ошибки оборачивает с операцией для логов.
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", domain.ErrTimeout, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
