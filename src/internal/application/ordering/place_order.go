package ordering

import (
	"fmt"

	"github.com/jackyeh168/product_store/src/internal/domain/shared"
	"github.com/jackyeh168/product_store/src/internal/domain/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ===========================
// PlaceOrder Use Case
// ===========================

// PlaceOrderLine 命令中的一行（以商品名稱指定）
type PlaceOrderLine struct {
	ProductName string
	Quantity    int
}

// PlaceOrderCommand 下單命令
type PlaceOrderCommand struct {
	Lines []PlaceOrderLine
}

// LineOutcome 單行處理結果
//
// Status: fulfilled / rejected / not_found
// Error 在成功時為空字串
type LineOutcome struct {
	ProductName string
	Quantity    int
	Status      string
	Charge      decimal.Decimal
	Error       string
}

// PlaceOrderResult 下單結果
type PlaceOrderResult struct {
	Lines     []LineOutcome
	Total     decimal.Decimal
	Fulfilled int
	Failed    int
}

// Catalog 下單所需的目錄操作（*store.Store 實作）
type Catalog interface {
	shared.EventSource
	Order(lines []store.OrderLine) store.OrderResult
}

// PlaceOrderUseCase 下單 Use Case
//
// 職責：
// 1. 在目錄鎖內執行 Store.Order（逐行盡力處理）
// 2. 拉取並發布領域事件
// 3. 記錄被拒絕的訂單行
//
// 錯誤處理：
// - 單行失敗不是錯誤，反映在 LineOutcome 中
// - 事件發布失敗只記錄日誌：訂單已套用，無法撤銷
// - 只有事務管理器本身失敗時才返回 error
type PlaceOrderUseCase struct {
	catalog   Catalog
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewPlaceOrderUseCase 創建 Use Case 實例
func NewPlaceOrderUseCase(
	catalog Catalog,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlaceOrderUseCase{
		catalog:   catalog,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 執行下單
func (uc *PlaceOrderUseCase) Execute(cmd PlaceOrderCommand) (*PlaceOrderResult, error) {
	lines := make([]store.OrderLine, 0, len(cmd.Lines))
	for _, l := range cmd.Lines {
		lines = append(lines, store.OrderLine{
			Product:  store.ByName(l.ProductName),
			Quantity: l.Quantity,
		})
	}

	var (
		order  store.OrderResult
		events []shared.DomainEvent
	)
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		order = uc.catalog.Order(lines)
		events = uc.catalog.PullEvents()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	uc.publish(events)

	result := &PlaceOrderResult{
		Lines: make([]LineOutcome, 0, len(order.Lines)),
		Total: order.Total,
	}
	for _, l := range order.Lines {
		outcome := LineOutcome{
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Status:      string(l.Status),
			Charge:      l.Charge,
		}
		if l.Err != nil {
			outcome.Error = l.Err.Error()
			result.Failed++
			uc.logger.Warn("order line rejected",
				zap.String("product", l.ProductName),
				zap.Int("quantity", l.Quantity),
				zap.String("status", string(l.Status)),
				zap.Error(l.Err))
		} else {
			result.Fulfilled++
		}
		result.Lines = append(result.Lines, outcome)
	}

	uc.logger.Info("order placed",
		zap.Int("lines", len(result.Lines)),
		zap.Int("fulfilled", result.Fulfilled),
		zap.Int("failed", result.Failed),
		zap.String("total", result.Total.String()))

	return result, nil
}

func (uc *PlaceOrderUseCase) publish(events []shared.DomainEvent) {
	if uc.publisher == nil || len(events) == 0 {
		return
	}
	if err := uc.publisher.PublishBatch(events); err != nil {
		uc.logger.Error("failed to publish order events",
			zap.Int("events", len(events)),
			zap.Error(err))
	}
}
