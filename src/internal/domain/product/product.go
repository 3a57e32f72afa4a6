package product

import (
	"strings"

	"github.com/jackyeh168/product_store/src/internal/domain/promotion"
	"github.com/jackyeh168/product_store/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Product 聚合根
// ===========================

// Product 商品聚合根
//
// 設計原則：
// 1. Buy 是庫存唯一的變更點，也是唯一查詢促銷的地方
// 2. 種類差異（一般 / 不計庫存 / 每單上限）由 stockPolicy 封裝
// 3. 促銷以參照掛載，多個商品可共用同一個 Promotion
// 4. 事件驅動：購買與售罄下架都記錄領域事件
//
// 業務不變條件：
// - name 非空且建構後不可變
// - price >= 0
// - quantity >= 0（不計庫存種類恆為 0）
// - 有限庫存商品在購買後庫存歸零時 active = false
type Product struct {
	// 識別
	id   ProductID
	name string

	// 定價與庫存
	price     decimal.Decimal
	quantity  int
	active    bool
	promotion promotion.Promotion

	policy stockPolicy

	// 待發布的領域事件
	events []shared.DomainEvent
}

// ===========================
// 建構函數
// ===========================

// New 創建一般（有限庫存）商品
//
// 錯誤：
// - name 為空、price 為負、quantity 為負 → ErrInvalidArgument
func New(name string, price decimal.Decimal, quantity int) (*Product, error) {
	return newProduct(name, price, quantity, regularStock{})
}

// NewUnlimited 創建不計庫存商品（數量恆為 0，購買永不因庫存失敗）
func NewUnlimited(name string, price decimal.Decimal) (*Product, error) {
	return newProduct(name, price, 0, unlimitedStock{})
}

// NewCapped 創建每單限購商品
//
// 錯誤：
// - 與 New 相同的參數檢查
// - orderMax <= 0 → ErrInvalidArgument
func NewCapped(name string, price decimal.Decimal, quantity int, orderMax int) (*Product, error) {
	if orderMax <= 0 {
		return nil, ErrInvalidArgument.WithContext(
			"field", "order_max",
			"value", orderMax,
			"reason", "order_max must be positive",
		)
	}
	return newProduct(name, price, quantity, cappedStock{max: orderMax})
}

func newProduct(name string, price decimal.Decimal, quantity int, policy stockPolicy) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidArgument.WithContext(
			"field", "name",
			"reason", "name must not be empty",
		)
	}
	if price.IsNegative() {
		return nil, ErrInvalidArgument.WithContext(
			"field", "price",
			"value", price.String(),
			"reason", "price must not be negative",
		)
	}
	if quantity < 0 {
		return nil, ErrInvalidArgument.WithContext(
			"field", "quantity",
			"value", quantity,
			"reason", "quantity must not be negative",
		)
	}

	return &Product{
		id:       NewProductID(),
		name:     name,
		price:    price,
		quantity: quantity,
		active:   true,
		policy:   policy,
		events:   make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法
// ===========================

func (p *Product) ID() ProductID {
	return p.id
}

// Name 商品名稱（nil 商品返回空字串）
func (p *Product) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Quantity 目前庫存（不計庫存種類恆為 0）
func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) IsActive() bool {
	return p.active
}

func (p *Product) Kind() Kind {
	return p.policy.kind()
}

// OrderMax 每單上限，0 表示不限
func (p *Product) OrderMax() int {
	return p.policy.orderMax()
}

// Promotion 目前掛載的促銷，未掛載時為 nil
func (p *Product) Promotion() promotion.Promotion {
	return p.promotion
}

// Show 顯示字串
//
// 格式：
//   "<name>, Price: <price>, Quantity: <quantity|Unlimited>[, Limited to <N> per order!][, Promotion: <name>]"
func (p *Product) Show() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString(", Price: ")
	b.WriteString(p.price.String())
	b.WriteString(", Quantity: ")
	b.WriteString(p.policy.quantityLabel(p.quantity))
	b.WriteString(p.policy.showSuffix())
	if p.promotion != nil {
		b.WriteString(", Promotion: ")
		b.WriteString(p.promotion.Name())
	}
	return b.String()
}

// ===========================
// 命令方法
// ===========================

// SetPromotion 掛載促銷（傳入 nil 表示移除）
func (p *Product) SetPromotion(promo promotion.Promotion) {
	p.promotion = promo
}

// SetQuantity 設定庫存
//
// 錯誤：quantity < 0 → ErrInvalidQuantity
//
// 不計庫存種類：永遠維持 0，不返回錯誤
func (p *Product) SetQuantity(quantity int) error {
	if p.policy.pinsQuantity() {
		p.quantity = 0
		return nil
	}
	if quantity < 0 {
		return ErrInvalidQuantity.WithContext(
			"product", p.name,
			"requested", quantity,
		)
	}
	p.quantity = quantity
	return nil
}

func (p *Product) Activate() {
	p.active = true
}

func (p *Product) Deactivate() {
	p.active = false
}

// Buy 購買（核心業務邏輯）
//
// 檢查順序：
// 1. quantity < 0 → ErrInvalidQuantity
// 2. 每單上限 → ErrOrderLimitExceeded（早於庫存檢查）
// 3. 庫存不足 → ErrInsufficientStock（不計庫存種類略過）
//
// 任何失敗都不修改狀態。
//
// 成功時：
// - 扣庫存，依種類調整 active
// - 金額 = quantity × price − 促銷折扣（不做下限截斷）
// - 記錄 ProductPurchasedEvent；售罄下架時另記錄 ProductDeactivatedEvent
func (p *Product) Buy(quantity int) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, ErrInvalidQuantity.WithContext(
			"product", p.name,
			"requested", quantity,
		)
	}

	if err := p.policy.checkOrderLimit(quantity); err != nil {
		return decimal.Zero, err
	}

	if !p.policy.ignoresStockLimit() && quantity > p.quantity {
		return decimal.Zero, ErrInsufficientStock.WithContext(
			"product", p.name,
			"requested", quantity,
			"available", p.quantity,
		)
	}

	// 狀態變更
	p.quantity -= quantity
	deactivated := p.policy.settle(p)

	gross := p.price.Mul(decimal.NewFromInt(int64(quantity)))
	discount := decimal.Zero
	if p.promotion != nil {
		discount = p.promotion.Apply(p.price, quantity)
	}
	charge := gross.Sub(discount)

	p.addEvent(NewProductPurchasedEvent(p.id, p.name, quantity, charge, discount))
	if deactivated {
		p.addEvent(NewProductDeactivatedEvent(p.id, p.name))
	}

	return charge, nil
}

// ===========================
// 事件管理
// ===========================

func (p *Product) addEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
func (p *Product) PullEvents() []shared.DomainEvent {
	events := p.events
	p.events = make([]shared.DomainEvent, 0)
	return events
}
