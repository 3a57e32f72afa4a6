package store

import (
	"github.com/jackyeh168/product_store/src/internal/domain/product"
	"github.com/jackyeh168/product_store/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Store 商品目錄
// ===========================

// Store 商品目錄與訂單履行
//
// 設計原則：
// 1. 保留插入順序，不強制名稱唯一（以名稱查找時取第一個）
// 2. 下架商品不從集合移除，只在查詢時過濾，重新上架後會再次出現
// 3. Order 採逐行盡力處理：單行失敗不中斷、不回滾已成功的行
//
// 並發：Store 本身不加鎖，多個呼叫者須透過 shared.TransactionManager 串行化
type Store struct {
	products []*product.Product
}

var _ shared.EventSource = (*Store)(nil)

// New 以初始商品列表建立目錄
func New(products ...*product.Product) *Store {
	owned := make([]*product.Product, len(products))
	copy(owned, products)
	return &Store{products: owned}
}

// AddProduct 加入商品（附加在末尾）
func (s *Store) AddProduct(p *product.Product) {
	s.products = append(s.products, p)
}

// RemoveProduct 移除商品（以參照識別，不存在時為 no-op）
func (s *Store) RemoveProduct(p *product.Product) {
	for i, existing := range s.products {
		if existing == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// GetAllProducts 所有上架中的商品（依插入順序）
func (s *Store) GetAllProducts() []*product.Product {
	active := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// GetTotalQuantity 上架中商品的庫存總和
func (s *Store) GetTotalQuantity() int {
	total := 0
	for _, p := range s.products {
		if p.IsActive() {
			total += p.Quantity()
		}
	}
	return total
}

// FindByName 以名稱查找目錄中的商品（含已下架）
func (s *Store) FindByName(name string) (*product.Product, bool) {
	for _, p := range s.products {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Order 處理多行訂單
//
// 每一行：
// 1. 以名稱解析為目錄中的商品實例；找不到 → LineNotFound，金額 0
// 2. 呼叫 Buy；失敗 → LineRejected，金額 0，繼續下一行
// 3. 成功 → LineFulfilled，金額計入總額
//
// 永不返回錯誤，也不回滾已處理的行
func (s *Store) Order(lines []OrderLine) OrderResult {
	result := OrderResult{
		Lines: make([]LineResult, 0, len(lines)),
		Total: decimal.Zero,
	}

	for _, line := range lines {
		result.Lines = append(result.Lines, s.fulfil(line))
	}

	for _, l := range result.Lines {
		result.Total = result.Total.Add(l.Charge)
	}
	return result
}

func (s *Store) fulfil(line OrderLine) LineResult {
	name := ""
	if line.Product != nil {
		// *product.Product 的 typed nil 也返回空字串
		name = line.Product.Name()
	}

	lr := LineResult{
		ProductName: name,
		Quantity:    line.Quantity,
		Charge:      decimal.Zero,
	}

	target, ok := s.FindByName(name)
	if !ok {
		lr.Status = LineNotFound
		lr.Err = ErrProductNotFound.WithContext("product", name)
		return lr
	}

	charge, err := target.Buy(line.Quantity)
	if err != nil {
		lr.Status = LineRejected
		lr.Err = err
		return lr
	}

	lr.Status = LineFulfilled
	lr.Charge = charge
	return lr
}

// PullEvents 收集目錄內所有商品的待發布事件
func (s *Store) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, 0)
	for _, p := range s.products {
		events = append(events, p.PullEvents()...)
	}
	return events
}
