package memory

import (
	"sync"

	"github.com/jackyeh168/product_store/src/internal/domain/shared"
)

// ===========================
// 記憶體 TransactionManager 實作
// ===========================

// transactionContext 記憶體事務上下文
// 只證明呼叫端持有目錄鎖，不攜帶任何資源
type transactionContext struct{}

// TransactionManager 以互斥鎖串行化對單一目錄的存取
//
// 設計原則：
// 1. 每個目錄一個 TransactionManager（一把鎖）
// 2. 鎖在整個 fn 期間持有，確保 Buy 看到一致的庫存
// 3. 不支援巢狀呼叫：在 fn 內再次呼叫 InTransaction 會死鎖
// 4. 不回滾：記憶體狀態的變更在 fn 執行時即生效
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager 創建記憶體事務管理器
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// InTransaction 在目錄鎖內執行 fn
//
// fn panic 時仍會釋放鎖，panic 繼續往上拋
func (m *TransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(transactionContext{})
}

var _ shared.TransactionManager = (*TransactionManager)(nil)
