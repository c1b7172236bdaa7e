// Пакет validate — проверка формы и типов входных данных (payload) до любого
// обращения к хранилищу. Ссылочную целостность не проверяет — это забота
// доменного слоя.
package validate

import (
	"errors"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ErrInvalidPayload — базовая (sentinel error) ошибка валидации payload.
// Конкретная причина оборачивается через %w.
var ErrInvalidPayload = errors.New("invalid payload")

// ProductDraft — сырой payload создания товара.
// Цена через указатель: отличаем «не передана» от валидного нуля.
type ProductDraft struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// Product — перенос провалидированного payload в доменную сущность.
func (d *ProductDraft) Product() *domain.Product {
	p := &domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
	if d.Price != nil {
		p.Price = *d.Price
	}
	return p
}

// PurchaseLineDraft — позиция покупки из payload.
type PurchaseLineDraft struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// PurchaseDraft — сырой payload создания покупки.
// Числовые поля через указатели: required-семантика без потери нуля.
type PurchaseDraft struct {
	ID         string              `json:"id"`
	Buyer      string              `json:"buyer"`
	Products   []PurchaseLineDraft `json:"products"`
	TotalPrice *float64            `json:"total_price"`
	Paid       *float64            `json:"paid"`
}

// Purchase — перенос провалидированного payload в доменный агрегат.
func (d *PurchaseDraft) Purchase() *domain.Purchase {
	p := &domain.Purchase{
		ID:    d.ID,
		Buyer: d.Buyer,
		Lines: make([]domain.PurchaseLine, 0, len(d.Products)),
	}
	if d.TotalPrice != nil {
		p.TotalPrice = *d.TotalPrice
	}
	if d.Paid != nil {
		p.Paid = *d.Paid
	}
	for _, line := range d.Products {
		p.Lines = append(p.Lines, domain.PurchaseLine{ProductID: line.ID, Quantity: line.Quantity})
	}
	return p
}
