package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================
// ProductPurchased 領域事件
// ===========================

// ProductPurchasedEvent 商品已售出事件
type ProductPurchasedEvent struct {
	eventID     string
	productID   ProductID
	productName string
	quantity    int
	charge      decimal.Decimal
	discount    decimal.Decimal
	occurredAt  time.Time
}

// NewProductPurchasedEvent 創建商品已售出事件
func NewProductPurchasedEvent(
	productID ProductID,
	productName string,
	quantity int,
	charge decimal.Decimal,
	discount decimal.Decimal,
) *ProductPurchasedEvent {
	return &ProductPurchasedEvent{
		eventID:     uuid.New().String(),
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		charge:      charge,
		discount:    discount,
		occurredAt:  time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *ProductPurchasedEvent) EventID() string { return e.eventID }

// EventType 實現 DomainEvent 介面
func (e *ProductPurchasedEvent) EventType() string { return "product.purchased" }

// OccurredAt 實現 DomainEvent 介面
func (e *ProductPurchasedEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID 實現 DomainEvent 介面
func (e *ProductPurchasedEvent) AggregateID() string { return e.productID.String() }

func (e *ProductPurchasedEvent) ProductName() string { return e.productName }

func (e *ProductPurchasedEvent) Quantity() int { return e.quantity }

// Charge 該行實收金額（已扣除折扣）
func (e *ProductPurchasedEvent) Charge() decimal.Decimal { return e.charge }

func (e *ProductPurchasedEvent) Discount() decimal.Decimal { return e.discount }

// ===========================
// ProductDeactivated 領域事件
// ===========================

// ProductDeactivatedEvent 商品因售罄自動下架事件
//
// 只在購買導致庫存歸零時發布；手動 Deactivate 不發布
type ProductDeactivatedEvent struct {
	eventID     string
	productID   ProductID
	productName string
	occurredAt  time.Time
}

// NewProductDeactivatedEvent 創建商品下架事件
func NewProductDeactivatedEvent(productID ProductID, productName string) *ProductDeactivatedEvent {
	return &ProductDeactivatedEvent{
		eventID:     uuid.New().String(),
		productID:   productID,
		productName: productName,
		occurredAt:  time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *ProductDeactivatedEvent) EventID() string { return e.eventID }

// EventType 實現 DomainEvent 介面
func (e *ProductDeactivatedEvent) EventType() string { return "product.deactivated" }

// OccurredAt 實現 DomainEvent 介面
func (e *ProductDeactivatedEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID 實現 DomainEvent 介面
func (e *ProductDeactivatedEvent) AggregateID() string { return e.productID.String() }

func (e *ProductDeactivatedEvent) ProductName() string { return e.productName }
