package shared

// TransactionContext 事務上下文介面（標記介面）
//
// 在本系統中，事務等同於「對單一商品目錄的獨占存取」：
// - 持有 ctx 期間，沒有其他呼叫者能讀寫同一目錄
// - 不提供回滾：訂單採逐行盡力處理，已成功的行不會被撤銷
type TransactionContext interface {
	// 標記介面：僅用於證明呼叫端位於事務內
}

// TransactionManager 事務管理器介面
//
// 使用範例：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       result = catalog.Order(lines)
//       return nil
//   })
//
// 行為約定：
// - fn 執行期間持有目錄鎖，fn 返回（或 panic）後釋放
// - fn 返回的錯誤原樣傳回
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
