package validate

import (
	"context"
	"fmt"
	"strconv"
)

// PurchaseValidator — валидация payload покупки.
type PurchaseValidator struct{}

// NewPurchaseValidator — конструктор PurchaseValidator.
func NewPurchaseValidator() *PurchaseValidator { return &PurchaseValidator{} }

// ValidateCreate — проверяет payload создания покупки.
// Массив products обязателен, но может быть пустым; каждая позиция —
// непустой id и положительное целое количество. total_price и paid
// обязательны (ноль — валидное значение).
func (v *PurchaseValidator) ValidateCreate(_ context.Context, draft *PurchaseDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: покупка не может быть nil", ErrInvalidPayload)
	}
	if draft.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidPayload)
	}
	if draft.Buyer == "" {
		return fmt.Errorf("%w: buyer обязателен", ErrInvalidPayload)
	}
	if draft.Products == nil {
		return fmt.Errorf("%w: products обязателен", ErrInvalidPayload)
	}
	for i := range draft.Products {
		line := &draft.Products[i]
		idx := strconv.Itoa(i)

		if line.ID == "" {
			return fmt.Errorf("%w: products[%s].id обязателен", ErrInvalidPayload, idx)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: products[%s].quantity должен быть положительным", ErrInvalidPayload, idx)
		}
	}
	if draft.TotalPrice == nil {
		return fmt.Errorf("%w: total_price обязателен", ErrInvalidPayload)
	}
	if draft.Paid == nil {
		return fmt.Errorf("%w: paid обязателен", ErrInvalidPayload)
	}
	return nil
}
