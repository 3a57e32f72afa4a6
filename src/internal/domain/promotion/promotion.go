package promotion

import (
	"github.com/shopspring/decimal"
)

// ===========================
// Promotion 策略介面
// ===========================

// Promotion 促銷策略
//
// 設計原則：
// 1. 純函數：Apply 不修改任何狀態，相同輸入永遠得到相同折扣
// 2. 以參照共享：同一個 Promotion 可掛在多個商品上，不應複製
// 3. 折扣為整行的一次性減額，而非逐件減額
//
// 業務規則：
// - 門檻皆為包含（>=）
// - 負數數量屬於呼叫端違約，不在此檢查
type Promotion interface {
	// Name 顯示名稱（出現在 Product.Show 中）
	Name() string

	// Kind 策略種類
	Kind() Kind

	// Apply 根據單價與購買數量計算折扣金額
	Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal
}

// Kind 促銷種類
type Kind string

const (
	KindSecondHalfPrice Kind = "second_half_price"
	KindThirdOneFree    Kind = "third_one_free"
	KindPercentDiscount Kind = "percent_discount"
)

var (
	half    = decimal.New(5, -1)
	hundred = decimal.NewFromInt(100)
)

// ===========================
// SecondHalfPrice
// ===========================

// SecondHalfPrice 第二件半價
//
// 數量 >= 2 時折抵一件單價的一半；買 5 件也只折抵一次
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice 建立第二件半價促銷
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

func (p *SecondHalfPrice) Name() string { return p.name }

func (p *SecondHalfPrice) Kind() Kind { return KindSecondHalfPrice }

// Apply 實現 Promotion 介面
func (p *SecondHalfPrice) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity >= 2 {
		return unitPrice.Mul(half)
	}
	return decimal.Zero
}

// ===========================
// ThirdOneFree
// ===========================

// ThirdOneFree 買三送一
//
// 數量 >= 3 時折抵一件單價；不論買幾件，每行只送一件
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree 建立買三送一促銷
func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

func (p *ThirdOneFree) Name() string { return p.name }

func (p *ThirdOneFree) Kind() Kind { return KindThirdOneFree }

// Apply 實現 Promotion 介面
func (p *ThirdOneFree) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity >= 3 {
		return unitPrice
	}
	return decimal.Zero
}

// ===========================
// PercentDiscount
// ===========================

// PercentDiscount 百分比折扣
//
// 折扣 = 單價 × 數量 × percent / 100，無數量門檻
//
// 注意：percent 不做上限檢查，超過 100 會讓該行金額變成負數
type PercentDiscount struct {
	name    string
	percent decimal.Decimal
}

// NewPercentDiscount 建立百分比折扣促銷
func NewPercentDiscount(name string, percent decimal.Decimal) *PercentDiscount {
	return &PercentDiscount{name: name, percent: percent}
}

func (p *PercentDiscount) Name() string { return p.name }

func (p *PercentDiscount) Kind() Kind { return KindPercentDiscount }

// Percent 折扣百分比
func (p *PercentDiscount) Percent() decimal.Decimal { return p.percent }

// Apply 實現 Promotion 介面
func (p *PercentDiscount) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return gross.Mul(p.percent).Div(hundred)
}

// ===========================
// 工廠
// ===========================

// FromKind 依種類建立促銷（供目錄種子載入使用）
//
// percent 只對 KindPercentDiscount 有意義，其餘種類忽略
func FromKind(kind Kind, name string, percent decimal.Decimal) (Promotion, error) {
	switch kind {
	case KindSecondHalfPrice:
		return NewSecondHalfPrice(name), nil
	case KindThirdOneFree:
		return NewThirdOneFree(name), nil
	case KindPercentDiscount:
		return NewPercentDiscount(name, percent), nil
	default:
		return nil, ErrUnknownKind.WithContext("kind", string(kind))
	}
}
