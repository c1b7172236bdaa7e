package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ProductValidator — валидация payload товара.
type ProductValidator struct{}

// NewProductValidator — конструктор ProductValidator.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// ValidateNew — проверяет payload создания товара: все поля обязательны,
// цена должна присутствовать (ноль — валидное значение).
func (v *ProductValidator) ValidateNew(_ context.Context, draft *ProductDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidPayload)
	}
	if draft.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidPayload)
	}
	if draft.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidPayload)
	}
	if draft.Price == nil {
		return fmt.Errorf("%w: price обязателен", ErrInvalidPayload)
	}
	if draft.Description == "" {
		return fmt.Errorf("%w: description обязателен", ErrInvalidPayload)
	}
	if draft.ImageURL == "" {
		return fmt.Errorf("%w: image_url обязателен", ErrInvalidPayload)
	}
	return nil
}

// ValidateUpdate — проверяет payload частичного обновления:
// хотя бы одно поле должно быть передано; переданный ноль и пустая строка —
// валидные значения (presence-семантика, а не truthiness).
func (v *ProductValidator) ValidateUpdate(_ context.Context, upd domain.ProductUpdate) error {
	if upd.Empty() {
		return fmt.Errorf("%w: не передано ни одно поле", ErrInvalidPayload)
	}
	return nil
}

// SearchQuery — проверяет строку поиска по каталогу: минимум один символ.
func SearchQuery(q string) error {
	if q == "" {
		return fmt.Errorf("%w: параметр q обязателен", ErrInvalidPayload)
	}
	return nil
}
