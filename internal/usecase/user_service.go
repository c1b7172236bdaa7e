package usecase

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что UserService удовлетворяет интерфейсу ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService — прикладная логика работы с пользователями (без знаний о транспорте).
type UserService struct {
	repo ports.UserRepository
	log  ports.Logger
}

// NewUserService — DI-конструктор.
func NewUserService(repo ports.UserRepository, log ports.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// ListUsers — все пользователи в порядке создания.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List users failed err=%v", err)
		return nil, wrapStoreErr("list users", err)
	}
	return users, nil
}

// CreateUser — вставка нового пользователя; занятый id → domain.ErrConflict.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.repo.Create(ctx, user); err != nil {
		s.log.Warnf(ctx, "create user failed id=%s err=%v", user.ID, err)
		return wrapStoreErr("create user", err)
	}
	s.log.Infof(ctx, "user created id=%s", user.ID)
	return nil
}
