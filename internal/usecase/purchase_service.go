package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// Проверка, что PurchaseService удовлетворяет интерфейсу ports.PurchaseService.
var _ ports.PurchaseService = (*PurchaseService)(nil)

// PurchaseService — прикладная логика оформления покупок.
// Последовательность проверок при создании фиксирована: занятый id,
// затем покупатель, затем товары — и только после этого транзакционная запись.
type PurchaseService struct {
	purchases ports.PurchaseRepository
	users     ports.UserRepository
	products  ports.ProductRepository
	publisher ports.EventPublisher
	log       ports.Logger
}

// NewPurchaseService — DI-конструктор.
func NewPurchaseService(
	purchases ports.PurchaseRepository,
	users ports.UserRepository,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	log ports.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		users:     users,
		products:  products,
		publisher: publisher,
		log:       log,
	}
}

// CreatePurchase — оформить покупку:
//  1. занятый id → domain.ErrConflict;
//  2. несуществующий покупатель → domain.ErrNotFound;
//  3. в списке позиций есть неизвестный или повторяющийся товар →
//     domain.ErrUnknownProduct (сравниваем distinct-количество с длиной списка);
//  4. заголовок и все позиции пишутся одной транзакцией;
//  5. событие о покупке публикуется после коммита, его сбой запрос не валит.
func (s *PurchaseService) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	taken, err := s.purchases.Exists(ctx, purchase.ID)
	if err != nil {
		s.log.Errorf(ctx, "purchase exists check failed id=%s err=%v", purchase.ID, err)
		return wrapStoreErr("check purchase", err)
	}
	if taken {
		return fmt.Errorf("%w: purchase %q", domain.ErrConflict, purchase.ID)
	}

	buyerExists, err := s.users.Exists(ctx, purchase.Buyer)
	if err != nil {
		s.log.Errorf(ctx, "buyer check failed buyer=%s err=%v", purchase.Buyer, err)
		return wrapStoreErr("check buyer", err)
	}
	if !buyerExists {
		return fmt.Errorf("%w: buyer %q", domain.ErrNotFound, purchase.Buyer)
	}

	if len(purchase.Lines) > 0 {
		ids := make([]string, 0, len(purchase.Lines))
		for _, line := range purchase.Lines {
			ids = append(ids, line.ProductID)
		}
		existing, err := s.products.CountExisting(ctx, ids)
		if err != nil {
			s.log.Errorf(ctx, "products check failed purchase=%s err=%v", purchase.ID, err)
			return wrapStoreErr("check products", err)
		}
		// Неизвестные id дают недобор, повторы — пересчёт: оба случая — отказ.
		if existing != len(ids) {
			return fmt.Errorf("%w: purchase %q", domain.ErrUnknownProduct, purchase.ID)
		}
	}

	start := time.Now()
	if err := s.purchases.Create(ctx, purchase); err != nil {
		s.log.Errorf(ctx, "purchase create failed id=%s err=%v", purchase.ID, err)
		return wrapStoreErr("create purchase", err)
	}
	metrics.PurchasesCreated.Inc()
	s.log.Infof(ctx, "purchase created id=%s lines=%d took=%s", purchase.ID, len(purchase.Lines), time.Since(start))

	if err := s.publisher.PublishPurchaseCreated(ctx, purchase); err != nil {
		s.log.Warnf(ctx, "publish purchase created failed id=%s err=%v", purchase.ID, err)
	}
	return nil
}

// GetPurchase — покупка с данными покупателя и товаров; нет записи → domain.ErrNotFound.
func (s *PurchaseService) GetPurchase(ctx context.Context, id string) (*domain.PurchaseDetails, error) {
	details, err := s.purchases.GetDetails(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "purchase fetch failed id=%s err=%v", id, err)
		return nil, wrapStoreErr("get purchase", err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: purchase %q", domain.ErrNotFound, id)
	}
	return details, nil
}

// DeletePurchase — удалить покупку вместе с позициями; нет записи → domain.ErrNotFound.
func (s *PurchaseService) DeletePurchase(ctx context.Context, id string) error {
	deleted, err := s.purchases.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "purchase delete failed id=%s err=%v", id, err)
		return wrapStoreErr("delete purchase", err)
	}
	if !deleted {
		return fmt.Errorf("%w: purchase %q", domain.ErrNotFound, id)
	}
	metrics.PurchasesDeleted.Inc()
	s.log.Infof(ctx, "purchase deleted id=%s", id)

	if err := s.publisher.PublishPurchaseDeleted(ctx, id); err != nil {
		s.log.Warnf(ctx, "publish purchase deleted failed id=%s err=%v", id, err)
	}
	return nil
}
