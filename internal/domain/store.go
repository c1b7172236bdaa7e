// Пакет domain — сущности витрины магазина: пользователи, товары и покупки.
// Идентификаторы всех сущностей задаются клиентом и уникальны в рамках типа.
package domain

import "time"

// User — покупатель. Пароль хранится как есть (непрозрачная строка),
// уникальность email на этом слое не контролируется.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// Product — товар каталога.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// ProductUpdate — частичное обновление товара.
// nil означает «поле не передано»; переданный ноль или пустая строка —
// валидные значения и должны быть записаны.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// Empty — true, если не передано ни одно поле.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil && u.Description == nil && u.ImageURL == nil
}

// PurchaseLine — позиция покупки из запроса: товар + количество.
type PurchaseLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// Purchase — заголовок покупки вместе с позициями.
// Покупка и её позиции создаются и удаляются как единый агрегат.
type Purchase struct {
	ID         string         `json:"id"`
	Buyer      string         `json:"buyer"`
	TotalPrice float64        `json:"total_price"`
	Paid       float64        `json:"paid"`
	CreatedAt  time.Time      `json:"created_at"`
	Lines      []PurchaseLine `json:"products"`
}

// PurchaseSummary — заголовок покупки, дополненный данными покупателя.
type PurchaseSummary struct {
	ID         string  `json:"id"`
	TotalPrice float64 `json:"total_price"`
	Buyer      string  `json:"buyer"`
	BuyerName  string  `json:"name"`
	BuyerEmail string  `json:"email"`
}

// PurchaseItem — позиция покупки, дополненная данными товара.
type PurchaseItem struct {
	ProductID   string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
}

// PurchaseDetails — агрегат для выдачи: заголовок + список позиций.
type PurchaseDetails struct {
	Purchase PurchaseSummary `json:"purchase"`
	Products []PurchaseItem  `json:"productList"`
}
