package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/golang/mock/gomock"
)

func TestListUsers_Proxy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	want := []domain.User{{ID: "user-1"}, {ID: "user-2"}}
	repo.EXPECT().List(gomock.Any()).Return(want, nil)

	svc := usecase.NewUserService(repo, noopLogger{})
	got, err := svc.ListUsers(context.Background())
	if err != nil || len(got) != 2 || got[0].ID != "user-1" {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
}

func TestCreateUser_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	user := &domain.User{ID: "user-1", Name: "John", Email: "john@example.com", Password: "secret"}
	repo.EXPECT().Create(gomock.Any(), user).Return(domain.ErrConflict)

	svc := usecase.NewUserService(repo, noopLogger{})
	if err := svc.CreateUser(context.Background(), user); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	user := &domain.User{ID: "user-1", Name: "John", Email: "john@example.com", Password: "secret"}
	repo.EXPECT().Create(gomock.Any(), user).Return(nil)

	svc := usecase.NewUserService(repo, noopLogger{})
	if err := svc.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListUsers_DeadlineMapsToTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	repo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

	svc := usecase.NewUserService(repo, noopLogger{})
	if _, err := svc.ListUsers(context.Background()); !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("want ErrTimeout, got %v", err)
	}
}
