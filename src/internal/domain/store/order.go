package store

import (
	"github.com/shopspring/decimal"
)

// ProductRef 訂單行對商品的參照
//
// Store.Order 只使用名稱解析，*product.Product 與 ByName 都滿足此介面；
// 傳入過期或脫離目錄的商品實例也會被重新解析到目錄中的實例
type ProductRef interface {
	Name() string
}

// ByName 只有名稱的商品參照（供以名稱下單的呼叫端使用）
type ByName string

func (n ByName) Name() string { return string(n) }

// OrderLine 訂單中的一行：商品參照 + 數量
type OrderLine struct {
	Product  ProductRef
	Quantity int
}

// LineStatus 訂單行處理結果
type LineStatus string

const (
	LineFulfilled LineStatus = "fulfilled" // 購買成功
	LineRejected  LineStatus = "rejected"  // Buy 失敗（數量無效、庫存不足、超過每單上限）
	LineNotFound  LineStatus = "not_found" // 目錄中找不到商品
)

// LineResult 單一訂單行的結果
type LineResult struct {
	ProductName string
	Quantity    int
	Status      LineStatus
	Charge      decimal.Decimal // 失敗時為 0
	Err         error           // 成功時為 nil
}

// OrderResult 整張訂單的結果
//
// Total 只累計成功行的金額；所有行都失敗或訂單為空時為 0
type OrderResult struct {
	Lines []LineResult
	Total decimal.Decimal
}

// Fulfilled 成功的訂單行
func (r OrderResult) Fulfilled() []LineResult {
	return r.filter(func(l LineResult) bool { return l.Status == LineFulfilled })
}

// Failed 失敗（含找不到商品）的訂單行
func (r OrderResult) Failed() []LineResult {
	return r.filter(func(l LineResult) bool { return l.Status != LineFulfilled })
}

func (r OrderResult) filter(keep func(LineResult) bool) []LineResult {
	out := make([]LineResult, 0, len(r.Lines))
	for _, l := range r.Lines {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
