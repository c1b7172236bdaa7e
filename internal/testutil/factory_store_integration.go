//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/storefront/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного пользователя
func MakeUser(opts ...func(*domain.User)) domain.User {
	id := "user-" + UniqSuffix()
	u := domain.User{
		ID:       id,
		Name:     "John Smith",
		Email:    id + "@example.com",
		Password: "secret",
	}
	for _, fn := range opts {
		fn(&u)
	}
	return u
}

// Мини-генератор валидного товара
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	id := "prod-" + UniqSuffix()
	p := domain.Product{
		ID:          id,
		Name:        "Widget " + id,
		Price:       9.99,
		Description: "test product",
		ImageURL:    "https://img.example.com/" + id + ".png",
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

// Мини-генератор валидной покупки: buyer и товары должны существовать в БД,
// поэтому их id передаются явно.
func MakePurchase(buyerID string, lines []domain.PurchaseLine, opts ...func(*domain.Purchase)) domain.Purchase {
	p := domain.Purchase{
		ID:         "purch-" + UniqSuffix(),
		Buyer:      buyerID,
		TotalPrice: 100,
		Paid:       100,
		Lines:      lines,
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithProductPrice(price float64) func(*domain.Product) {
	return func(p *domain.Product) { p.Price = price }
}

func WithPurchaseID(id string) func(*domain.Purchase) {
	return func(p *domain.Purchase) { p.ID = id }
}
