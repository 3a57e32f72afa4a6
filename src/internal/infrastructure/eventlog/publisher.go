package eventlog

import (
	"sync"
	"time"

	"github.com/jackyeh168/product_store/src/internal/domain/product"
	"github.com/jackyeh168/product_store/src/internal/domain/shared"
	"go.uber.org/zap"
)

// Publisher 將領域事件寫入結構化日誌的 EventPublisher 實作
//
// 沒有外部訊息佇列時，事件只以日誌形式留存；
// Counts 提供各事件類型的發布次數，供示範程式與測試查詢
type Publisher struct {
	logger *zap.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewPublisher 創建日誌事件發布器
func NewPublisher(logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		logger: logger,
		counts: make(map[string]int),
	}
}

// Publish 實現 shared.EventPublisher 介面
func (p *Publisher) Publish(event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.String("occurred_at", event.OccurredAt().Format(time.RFC3339Nano)),
	}
	fields = append(fields, payloadFields(event)...)

	p.logger.Info("domain event", fields...)

	p.mu.Lock()
	p.counts[event.EventType()]++
	p.mu.Unlock()
	return nil
}

// PublishBatch 實現 shared.EventPublisher 介面
func (p *Publisher) PublishBatch(events []shared.DomainEvent) error {
	for _, e := range events {
		if err := p.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

// Counts 各事件類型的發布次數（副本）
func (p *Publisher) Counts() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]int, len(p.counts))
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}

func payloadFields(event shared.DomainEvent) []zap.Field {
	switch e := event.(type) {
	case *product.ProductPurchasedEvent:
		return []zap.Field{
			zap.String("product", e.ProductName()),
			zap.Int("quantity", e.Quantity()),
			zap.String("charge", e.Charge().String()),
			zap.String("discount", e.Discount().String()),
		}
	case *product.ProductDeactivatedEvent:
		return []zap.Field{zap.String("product", e.ProductName())}
	default:
		return nil
	}
}

var _ shared.EventPublisher = (*Publisher)(nil)
