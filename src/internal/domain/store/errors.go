package store

import "github.com/jackyeh168/product_store/src/internal/domain/product"

// 目錄相關錯誤代碼
const (
	ErrCodeProductNotFound product.ErrorCode = "STORE_PRODUCT_NOT_FOUND"
)

var (
	// ErrProductNotFound 訂單行指定的商品不在目錄中
	ErrProductNotFound = &product.DomainError{
		Code:    ErrCodeProductNotFound,
		Message: "目錄中找不到商品",
	}
)
