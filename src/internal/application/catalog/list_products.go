package catalog

import (
	"github.com/jackyeh168/product_store/src/internal/domain/product"
	"github.com/jackyeh168/product_store/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Catalog 查詢所需的目錄操作（*store.Store 實作）
type Catalog interface {
	GetAllProducts() []*product.Product
	GetTotalQuantity() int
}

// ProductView 商品列表中的一項
type ProductView struct {
	Name     string
	Kind     string
	Price    decimal.Decimal
	Quantity int
	OrderMax int
	Display  string // Product.Show()
}

// ListProductsResult 上架商品列表
type ListProductsResult struct {
	Products []ProductView
}

// ListProductsUseCase 列出上架商品（依插入順序）
type ListProductsUseCase struct {
	catalog   Catalog
	txManager shared.TransactionManager
}

// NewListProductsUseCase 創建 Use Case 實例
func NewListProductsUseCase(catalog Catalog, txManager shared.TransactionManager) *ListProductsUseCase {
	return &ListProductsUseCase{catalog: catalog, txManager: txManager}
}

// Execute 執行查詢
func (uc *ListProductsUseCase) Execute() (*ListProductsResult, error) {
	result := &ListProductsResult{}
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		for _, p := range uc.catalog.GetAllProducts() {
			result.Products = append(result.Products, ProductView{
				Name:     p.Name(),
				Kind:     string(p.Kind()),
				Price:    p.Price(),
				Quantity: p.Quantity(),
				OrderMax: p.OrderMax(),
				Display:  p.Show(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetTotalQuantityUseCase 查詢上架商品庫存總和
type GetTotalQuantityUseCase struct {
	catalog   Catalog
	txManager shared.TransactionManager
}

// NewGetTotalQuantityUseCase 創建 Use Case 實例
func NewGetTotalQuantityUseCase(catalog Catalog, txManager shared.TransactionManager) *GetTotalQuantityUseCase {
	return &GetTotalQuantityUseCase{catalog: catalog, txManager: txManager}
}

// Execute 執行查詢
func (uc *GetTotalQuantityUseCase) Execute() (int, error) {
	total := 0
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		total = uc.catalog.GetTotalQuantity()
		return nil
	})
	return total, err
}
