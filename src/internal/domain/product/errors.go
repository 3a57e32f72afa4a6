package product

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

const (
	// 建構相關
	ErrCodeInvalidArgument ErrorCode = "PRODUCT_INVALID_ARGUMENT"

	// 購買相關
	ErrCodeInvalidQuantity    ErrorCode = "PRODUCT_INVALID_QUANTITY"
	ErrCodeInsufficientStock  ErrorCode = "PRODUCT_INSUFFICIENT_STOCK"
	ErrCodeOrderLimitExceeded ErrorCode = "PRODUCT_ORDER_LIMIT_EXCEEDED"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 商品領域錯誤
//
// 設計原則：
// 1. 結構化錯誤代碼（呼叫端可依 Code 分類）
// 2. 支持上下文信息（用於日誌）
// 3. 不可變性（WithContext 返回新實例）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 建構錯誤：名稱為空、價格或數量為負、每單上限非正數
var ErrInvalidArgument = &DomainError{
	Code:    ErrCodeInvalidArgument,
	Message: "無效的商品參數",
}

// 購買錯誤：永遠只影響單一訂單行
var (
	ErrInvalidQuantity = &DomainError{
		Code:    ErrCodeInvalidQuantity,
		Message: "數量不能為負數",
	}

	ErrInsufficientStock = &DomainError{
		Code:    ErrCodeInsufficientStock,
		Message: "購買數量超過庫存",
	}

	ErrOrderLimitExceeded = &DomainError{
		Code:    ErrCodeOrderLimitExceeded,
		Message: "購買數量超過每單上限",
	}
)
