package product

import (
	"fmt"
	"strconv"
)

// Kind 商品種類
type Kind string

const (
	KindRegular   Kind = "regular"   // 有限庫存
	KindUnlimited Kind = "unlimited" // 不計庫存（如軟體授權）
	KindCapped    Kind = "capped"    // 有限庫存 + 每單上限
)

// stockPolicy 各商品種類的庫存規則
//
// 每個種類一個實作，Product 只透過此介面分派，不做類型判斷
type stockPolicy interface {
	kind() Kind

	// orderMax 每單上限，0 表示不限
	orderMax() int

	// ignoresStockLimit 為 true 時 Buy 不比對庫存
	ignoresStockLimit() bool

	// checkOrderLimit 在庫存檢查之前執行
	checkOrderLimit(quantity int) error

	// settle 購買扣庫存後調整狀態，返回是否因售罄而下架
	settle(p *Product) (deactivated bool)

	// pinsQuantity 為 true 時數量恆為 0，SetQuantity 為 no-op
	pinsQuantity() bool

	quantityLabel(quantity int) string
	showSuffix() string
}

// ===========================
// regularStock
// ===========================

type regularStock struct{}

func (regularStock) kind() Kind { return KindRegular }

func (regularStock) orderMax() int { return 0 }

func (regularStock) ignoresStockLimit() bool { return false }

func (regularStock) checkOrderLimit(int) error { return nil }

// settle 庫存歸零即自動下架
func (regularStock) settle(p *Product) bool {
	if p.quantity == 0 && p.active {
		p.active = false
		return true
	}
	return false
}

func (regularStock) pinsQuantity() bool { return false }

func (regularStock) quantityLabel(quantity int) string {
	return strconv.Itoa(quantity)
}

func (regularStock) showSuffix() string { return "" }

// ===========================
// unlimitedStock
// ===========================

type unlimitedStock struct{}

func (unlimitedStock) kind() Kind { return KindUnlimited }

func (unlimitedStock) orderMax() int { return 0 }

func (unlimitedStock) ignoresStockLimit() bool { return true }

func (unlimitedStock) checkOrderLimit(int) error { return nil }

// settle 數量固定為 0，每次成功購買都強制上架
func (unlimitedStock) settle(p *Product) bool {
	p.quantity = 0
	p.active = true
	return false
}

func (unlimitedStock) pinsQuantity() bool { return true }

func (unlimitedStock) quantityLabel(int) string { return "Unlimited" }

func (unlimitedStock) showSuffix() string { return "" }

// ===========================
// cappedStock
// ===========================

type cappedStock struct {
	regularStock
	max int
}

func (cappedStock) kind() Kind { return KindCapped }

func (c cappedStock) orderMax() int { return c.max }

func (c cappedStock) checkOrderLimit(quantity int) error {
	if quantity > c.max {
		return ErrOrderLimitExceeded.WithContext(
			"requested", quantity,
			"order_max", c.max,
		)
	}
	return nil
}

func (c cappedStock) showSuffix() string {
	return fmt.Sprintf(", Limited to %d per order!", c.max)
}
