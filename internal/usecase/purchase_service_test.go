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

const purchaseID = "purchase-1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newPurchaseService(ctrl *gomock.Controller) (
	*usecase.PurchaseService,
	*mocks.MockPurchaseRepository,
	*mocks.MockUserRepository,
	*mocks.MockProductRepository,
	*mocks.MockEventPublisher,
) {
	purchases := mocks.NewMockPurchaseRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	products := mocks.NewMockProductRepository(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := usecase.NewPurchaseService(purchases, users, products, publisher, noopLogger{})
	return svc, purchases, users, products, publisher
}

func makePurchase() *domain.Purchase {
	return &domain.Purchase{
		ID:         purchaseID,
		Buyer:      "user-1",
		TotalPrice: 100,
		Paid:       100,
		Lines: []domain.PurchaseLine{
			{ProductID: "prod-1", Quantity: 2},
			{ProductID: "prod-2", Quantity: 1},
		},
	}
}

func TestCreatePurchase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, publisher := newPurchaseService(ctrl)

	p := makePurchase()

	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), p.Buyer).Return(true, nil),
		products.EXPECT().CountExisting(gomock.Any(), []string{"prod-1", "prod-2"}).Return(2, nil),
		purchases.EXPECT().Create(gomock.Any(), p).Return(nil),
		publisher.EXPECT().PublishPurchaseCreated(gomock.Any(), p).Return(nil),
	)

	if err := svc.CreatePurchase(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreatePurchase_DuplicateID_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, _, _ := newPurchaseService(ctrl)

	purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(true, nil)
	users.EXPECT().Exists(gomock.Any(), gomock.Any()).Times(0)
	purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreatePurchase(context.Background(), makePurchase())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestCreatePurchase_MissingBuyer_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, _ := newPurchaseService(ctrl)

	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), "user-1").Return(false, nil),
	)
	products.EXPECT().CountExisting(gomock.Any(), gomock.Any()).Times(0)
	purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreatePurchase(context.Background(), makePurchase())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreatePurchase_UnknownProduct_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, _ := newPurchaseService(ctrl)

	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), "user-1").Return(true, nil),
		products.EXPECT().CountExisting(gomock.Any(), []string{"prod-1", "prod-2"}).Return(1, nil),
	)
	purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreatePurchase(context.Background(), makePurchase())
	if !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("want ErrUnknownProduct, got %v", err)
	}
}

func TestCreatePurchase_DuplicateLines_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, _ := newPurchaseService(ctrl)

	p := makePurchase()
	p.Lines = []domain.PurchaseLine{
		{ProductID: "prod-1", Quantity: 1},
		{ProductID: "prod-1", Quantity: 2},
	}

	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), "user-1").Return(true, nil),
		// distinct-количество меньше длины списка
		products.EXPECT().CountExisting(gomock.Any(), []string{"prod-1", "prod-1"}).Return(1, nil),
	)
	purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreatePurchase(context.Background(), p)
	if !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("want ErrUnknownProduct, got %v", err)
	}
}

func TestCreatePurchase_EmptyLines_SkipsProductCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, publisher := newPurchaseService(ctrl)

	p := makePurchase()
	p.Lines = nil

	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), "user-1").Return(true, nil),
		purchases.EXPECT().Create(gomock.Any(), p).Return(nil),
		publisher.EXPECT().PublishPurchaseCreated(gomock.Any(), p).Return(nil),
	)
	products.EXPECT().CountExisting(gomock.Any(), gomock.Any()).Times(0)

	if err := svc.CreatePurchase(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreatePurchase_PublisherFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, publisher := newPurchaseService(ctrl)

	p := makePurchase()

	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), "user-1").Return(true, nil),
		products.EXPECT().CountExisting(gomock.Any(), gomock.Any()).Return(2, nil),
		purchases.EXPECT().Create(gomock.Any(), p).Return(nil),
		publisher.EXPECT().PublishPurchaseCreated(gomock.Any(), p).Return(errors.New("broker down")),
	)

	if err := svc.CreatePurchase(context.Background(), p); err != nil {
		t.Fatalf("publisher failure must not fail the request, got %v", err)
	}
}

func TestCreatePurchase_RepoError_Wrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, users, products, _ := newPurchaseService(ctrl)

	repoErr := errors.New("DB down")
	gomock.InOrder(
		purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, nil),
		users.EXPECT().Exists(gomock.Any(), "user-1").Return(true, nil),
		products.EXPECT().CountExisting(gomock.Any(), gomock.Any()).Return(2, nil),
		purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr),
	)

	err := svc.CreatePurchase(context.Background(), makePurchase())
	if !errors.Is(err, repoErr) {
		t.Fatalf("want wrapped repo error, got %v", err)
	}
}

func TestCreatePurchase_DeadlineMapsToTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, _, _, _ := newPurchaseService(ctrl)

	purchases.EXPECT().Exists(gomock.Any(), purchaseID).Return(false, context.DeadlineExceeded)

	err := svc.CreatePurchase(context.Background(), makePurchase())
	if !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("want ErrTimeout, got %v", err)
	}
}

func TestGetPurchase_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, _, _, _ := newPurchaseService(ctrl)

	details := &domain.PurchaseDetails{
		Purchase: domain.PurchaseSummary{ID: purchaseID, Buyer: "user-1"},
		Products: []domain.PurchaseItem{{ProductID: "prod-1", Quantity: 2}},
	}
	purchases.EXPECT().GetDetails(gomock.Any(), purchaseID).Return(details, nil)

	got, err := svc.GetPurchase(context.Background(), purchaseID)
	if err != nil || got == nil || got.Purchase.ID != purchaseID {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
}

func TestGetPurchase_Missing_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, _, _, _ := newPurchaseService(ctrl)

	purchases.EXPECT().GetDetails(gomock.Any(), purchaseID).Return(nil, nil)

	_, err := svc.GetPurchase(context.Background(), purchaseID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeletePurchase_Success_Publishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, _, _, publisher := newPurchaseService(ctrl)

	gomock.InOrder(
		purchases.EXPECT().Delete(gomock.Any(), purchaseID).Return(true, nil),
		publisher.EXPECT().PublishPurchaseDeleted(gomock.Any(), purchaseID).Return(nil),
	)

	if err := svc.DeletePurchase(context.Background(), purchaseID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePurchase_Missing_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, _, _, publisher := newPurchaseService(ctrl)

	purchases.EXPECT().Delete(gomock.Any(), purchaseID).Return(false, nil)
	publisher.EXPECT().PublishPurchaseDeleted(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeletePurchase(context.Background(), purchaseID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeletePurchase_PublisherFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, purchases, _, _, publisher := newPurchaseService(ctrl)

	gomock.InOrder(
		purchases.EXPECT().Delete(gomock.Any(), purchaseID).Return(true, nil),
		publisher.EXPECT().PublishPurchaseDeleted(gomock.Any(), purchaseID).Return(errors.New("broker down")),
	)

	if err := svc.DeletePurchase(context.Background(), purchaseID); err != nil {
		t.Fatalf("publisher failure must not fail the request, got %v", err)
	}
}
