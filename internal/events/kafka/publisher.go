// Пакет kafka — публикация событий магазина в брокер (segmentio/kafka-go).
// Публикация синхронная и best-effort: сбой брокера логируется вызывающей
// стороной и не влияет на результат HTTP-запроса.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет интерфейсу ports.EventPublisher.
var _ ports.EventPublisher = (*Publisher)(nil)

// Типы публикуемых событий (значение поля type и метка метрик).
const (
	EventPurchaseCreated = "purchase_created"
	EventPurchaseDeleted = "purchase_deleted"
)

// writer — минимальный контракт над kafka.Writer для подмены в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PublisherConfig — параметры подключения к брокеру.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher — обёртка над kafka.Writer.
type Publisher struct {
	writer    writer
	closeOnce sync.Once
}

// NewPublisher — конструктор. Ключ сообщения — id покупки, чтобы события
// одной покупки попадали в одну партицию и сохраняли порядок.
func NewPublisher(cfg PublisherConfig) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			WriteTimeout: wt,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// purchaseCreatedEvent — полезная нагрузка события о новой покупке.
type purchaseCreatedEvent struct {
	Type       string               `json:"type"`
	PurchaseID string               `json:"purchase_id"`
	Buyer      string               `json:"buyer"`
	TotalPrice float64              `json:"total_price"`
	Paid       float64              `json:"paid"`
	Lines      []domain.PurchaseLine `json:"products"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// purchaseDeletedEvent — полезная нагрузка события об удалении покупки.
type purchaseDeletedEvent struct {
	Type       string    `json:"type"`
	PurchaseID string    `json:"purchase_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishPurchaseCreated — событие о созданной покупке.
func (p *Publisher) PublishPurchaseCreated(ctx context.Context, purchase *domain.Purchase) error {
	event := purchaseCreatedEvent{
		Type:       EventPurchaseCreated,
		PurchaseID: purchase.ID,
		Buyer:      purchase.Buyer,
		TotalPrice: purchase.TotalPrice,
		Paid:       purchase.Paid,
		Lines:      purchase.Lines,
		OccurredAt: time.Now().UTC(),
	}
	return p.publish(ctx, EventPurchaseCreated, purchase.ID, event)
}

// PublishPurchaseDeleted — событие об удалённой покупке.
func (p *Publisher) PublishPurchaseDeleted(ctx context.Context, purchaseID string) error {
	event := purchaseDeletedEvent{
		Type:       EventPurchaseDeleted,
		PurchaseID: purchaseID,
		OccurredAt: time.Now().UTC(),
	}
	return p.publish(ctx, EventPurchaseDeleted, purchaseID, event)
}

func (p *Publisher) publish(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		metrics.EventsFailed.WithLabelValues(eventType).Inc()
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		metrics.EventsFailed.WithLabelValues(eventType).Inc()
		return fmt.Errorf("write %s: %w", eventType, err)
	}

	metrics.EventsPublished.WithLabelValues(eventType).Inc()
	return nil
}

// Close — закрывает writer; повторный вызов безопасен.
func (p *Publisher) Close() error {
	var err error
	p.closeOnce.Do(func() { err = p.writer.Close() })
	return err
}
