package product

import (
	"github.com/jackyeh168/product_store/src/internal/domain/shared"
)

// ProductMarker 是 ProductID 的標記類型
type ProductMarker struct{}

// ProductID 商品的技術識別符
//
// 注意：業務上商品以名稱識別（Store.Order 以名稱解析訂單行），
// ProductID 只用於領域事件的 AggregateID 與日誌關聯
type ProductID = shared.EntityID[ProductMarker]

// NewProductID 生成新的商品 ID（UUID v4）
func NewProductID() ProductID {
	return shared.NewEntityID[ProductMarker]()
}
