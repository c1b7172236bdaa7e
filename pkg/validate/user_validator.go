package validate

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// UserValidator — валидация payload пользователя.
type UserValidator struct{}

// NewUserValidator — конструктор UserValidator.
func NewUserValidator() *UserValidator { return &UserValidator{} }

// ValidateNew — проверяет payload создания пользователя: все поля обязательны,
// email должен иметь форму адреса.
func (v *UserValidator) ValidateNew(_ context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("%w: пользователь не может быть nil", ErrInvalidPayload)
	}
	if user.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidPayload)
	}
	if user.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidPayload)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidPayload)
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidPayload)
	}
	if user.Password == "" {
		return fmt.Errorf("%w: password обязателен", ErrInvalidPayload)
	}
	return nil
}
