package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что UserRepository удовлетворяет интерфейсу ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository — реализация репозитория пользователей на Postgres (pgxpool).
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository — конструктор UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository { return &UserRepository{pool: pool} }

// List — все пользователи в порядке создания.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, password, created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users rows: %w", err)
	}
	return users, nil
}

// Create — вставка нового пользователя; дубликат id → domain.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4)
	`, user.ID, user.Name, user.Email, user.Password)
	if isPgErr(err, codeUniqueViolation) {
		return fmt.Errorf("%w: user %q", domain.ErrConflict, user.ID)
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Exists — проверка наличия пользователя по id.
func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists user: %w", err)
	}
	return exists, nil
}
