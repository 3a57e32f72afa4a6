package product_test

import (
	"testing"

	"github.com/jackyeh168/product_store/src/internal/domain/product"
	"github.com/jackyeh168/product_store/src/internal/domain/promotion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	assert.True(t, want.Equal(actual), "expected %s, got %s", want, actual)
}

func newRegular(t *testing.T, name string, unitPrice int64, quantity int) *product.Product {
	t.Helper()
	p, err := product.New(name, price(unitPrice), quantity)
	require.NoError(t, err)
	return p
}

// ===========================
// 建構測試
// ===========================

func TestNew_ValidArguments_ReturnsProduct(t *testing.T) {
	// Act
	p, err := product.New("testName", price(300), 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "testName", p.Name())
	assertAmount(t, "300", p.Price())
	assert.Equal(t, 10, p.Quantity())
	assert.True(t, p.IsActive())
	assert.Equal(t, product.KindRegular, p.Kind())
	assert.NotEmpty(t, p.ID().String())
	assert.Nil(t, p.Promotion())
}

func TestNew_ZeroPriceAndQuantity_Accepted(t *testing.T) {
	p, err := product.New("freebie", decimal.Zero, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity())
}

func TestNew_InvalidArguments_ReturnsError(t *testing.T) {
	tests := []struct {
		name      string
		prodName  string
		unitPrice decimal.Decimal
		quantity  int
		field     string
	}{
		{"空名稱", "", price(10), 30, "name"},
		{"負價格", "testName", price(-10), 30, "price"},
		{"負數量", "testName", price(10), -1, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := product.New(tt.prodName, tt.unitPrice, tt.quantity)

			assert.Nil(t, p)
			assert.ErrorIs(t, err, product.ErrInvalidArgument)

			de, ok := err.(*product.DomainError)
			require.True(t, ok)
			assert.Equal(t, tt.field, de.Context["field"])
		})
	}
}

func TestNew_WhitespaceName_Accepted(t *testing.T) {
	p, err := product.New("  ", price(1), 1)

	require.NoError(t, err)
	assert.Equal(t, "  ", p.Name())
}

func TestName_NilProduct_ReturnsEmpty(t *testing.T) {
	var p *product.Product

	assert.Equal(t, "", p.Name())
}

func TestNewCapped_NonPositiveOrderMax_ReturnsError(t *testing.T) {
	p, err := product.NewCapped("Shipping", price(10), 250, 0)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, product.ErrInvalidArgument)
}

func TestNewUnlimited_InvalidName_ReturnsError(t *testing.T) {
	_, err := product.NewUnlimited("", price(125))

	assert.ErrorIs(t, err, product.ErrInvalidArgument)
}

// ===========================
// Regular Buy 測試
// ===========================

func TestBuy_EntireStock_DeactivatesProduct(t *testing.T) {
	// Arrange
	p := newRegular(t, "testName", 30, 10)

	// Act
	charge, err := p.Buy(10)

	// Assert
	require.NoError(t, err)
	assertAmount(t, "300", charge)
	assert.Equal(t, 0, p.Quantity())
	assert.False(t, p.IsActive())
}

func TestBuy_PartialStock_DecrementsQuantity(t *testing.T) {
	p := newRegular(t, "testName", 30, 10)

	charge, err := p.Buy(7)

	require.NoError(t, err)
	assertAmount(t, "210", charge)
	assert.Equal(t, 3, p.Quantity())
	assert.True(t, p.IsActive())
}

func TestBuy_MoreThanStock_ReturnsErrorWithoutMutation(t *testing.T) {
	// Arrange
	p := newRegular(t, "testName", 10, 30)

	// Act
	charge, err := p.Buy(50)

	// Assert
	assert.ErrorIs(t, err, product.ErrInsufficientStock)
	assert.True(t, charge.IsZero())
	assert.Equal(t, 30, p.Quantity())
	assert.True(t, p.IsActive())
	assert.Empty(t, p.PullEvents())
}

func TestBuy_NegativeQuantity_ReturnsInvalidQuantity(t *testing.T) {
	p := newRegular(t, "testName", 10, 30)

	_, err := p.Buy(-1)

	assert.ErrorIs(t, err, product.ErrInvalidQuantity)
	assert.Equal(t, 30, p.Quantity())
}

func TestBuy_ZeroQuantity_ChargesNothing(t *testing.T) {
	p := newRegular(t, "testName", 10, 30)

	charge, err := p.Buy(0)

	require.NoError(t, err)
	assert.True(t, charge.IsZero())
	assert.Equal(t, 30, p.Quantity())
}

func TestBuy_SucceedsIffWithinStock(t *testing.T) {
	const stock = 5
	for q := 0; q <= stock+2; q++ {
		p := newRegular(t, "probe", 1, stock)

		_, err := p.Buy(q)

		if q <= stock {
			assert.NoError(t, err, "q=%d", q)
			assert.Equal(t, stock-q, p.Quantity())
			assert.Equal(t, stock-q != 0, p.IsActive())
		} else {
			assert.ErrorIs(t, err, product.ErrInsufficientStock, "q=%d", q)
			assert.Equal(t, stock, p.Quantity())
		}
	}
}

// ===========================
// 促銷測試
// ===========================

func TestBuy_WithSecondHalfPrice_SubtractsDiscount(t *testing.T) {
	p := newRegular(t, "MacBook Air M2", 1450, 100)
	p.SetPromotion(promotion.NewSecondHalfPrice("Second Half price!"))

	charge, err := p.Buy(4)

	require.NoError(t, err)
	assertAmount(t, "5075", charge) // 4×1450 − 725
}

func TestBuy_WithThirdOneFree_SubtractsOneUnit(t *testing.T) {
	p := newRegular(t, "Bose QuietComfort Earbuds", 250, 500)
	p.SetPromotion(promotion.NewThirdOneFree("Third One Free!"))

	charge, err := p.Buy(4)

	require.NoError(t, err)
	assertAmount(t, "750", charge)
}

func TestBuy_PercentOverHundred_ChargeIsNegative(t *testing.T) {
	p := newRegular(t, "glitch", 10, 5)
	p.SetPromotion(promotion.NewPercentDiscount("150% off!", price(150)))

	charge, err := p.Buy(2)

	require.NoError(t, err)
	assertAmount(t, "-10", charge)
}

func TestSetPromotion_SharedAcrossProducts(t *testing.T) {
	promo := promotion.NewThirdOneFree("Third One Free!")
	a := newRegular(t, "a", 10, 10)
	b := newRegular(t, "b", 20, 10)

	a.SetPromotion(promo)
	b.SetPromotion(promo)

	assert.Same(t, a.Promotion(), b.Promotion())

	b.SetPromotion(nil)
	assert.Nil(t, b.Promotion())
	assert.NotNil(t, a.Promotion())
}

// ===========================
// Unlimited 測試
// ===========================

func TestUnlimited_RepeatedBuys_StayActiveAtZero(t *testing.T) {
	// Arrange
	p, err := product.NewUnlimited("Windows License", price(125))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		// Act
		charge, err := p.Buy(1000)

		// Assert
		require.NoError(t, err)
		assertAmount(t, "125000", charge)
		assert.Equal(t, 0, p.Quantity())
		assert.True(t, p.IsActive())
	}
}

func TestUnlimited_Buy_ReactivatesProduct(t *testing.T) {
	p, _ := product.NewUnlimited("Windows License", price(125))
	p.Deactivate()

	_, err := p.Buy(1)

	require.NoError(t, err)
	assert.True(t, p.IsActive())
}

func TestUnlimited_SetQuantity_AlwaysPinsZero(t *testing.T) {
	p, _ := product.NewUnlimited("Windows License", price(125))

	assert.NoError(t, p.SetQuantity(50))
	assert.Equal(t, 0, p.Quantity())
	assert.NoError(t, p.SetQuantity(-5))
	assert.Equal(t, 0, p.Quantity())
}

func TestUnlimited_Buy_NegativeQuantity_StillRejected(t *testing.T) {
	p, _ := product.NewUnlimited("Windows License", price(125))

	_, err := p.Buy(-1)

	assert.ErrorIs(t, err, product.ErrInvalidQuantity)
}

// ===========================
// Capped 測試
// ===========================

func TestCapped_OverLimit_RejectedBeforeStockCheck(t *testing.T) {
	// Arrange
	p, err := product.NewCapped("Shipping", price(10), 250, 1)
	require.NoError(t, err)

	// Act
	_, err = p.Buy(2)

	// Assert
	assert.ErrorIs(t, err, product.ErrOrderLimitExceeded)
	assert.Equal(t, 250, p.Quantity())
}

func TestCapped_OverLimitAndOverStock_ReportsOrderLimit(t *testing.T) {
	p, _ := product.NewCapped("Shipping", price(10), 1, 1)

	_, err := p.Buy(5)

	assert.ErrorIs(t, err, product.ErrOrderLimitExceeded)
}

func TestCapped_WithinLimit_Succeeds(t *testing.T) {
	p, _ := product.NewCapped("Shipping", price(10), 250, 1)

	charge, err := p.Buy(1)

	require.NoError(t, err)
	assertAmount(t, "10", charge)
	assert.Equal(t, 249, p.Quantity())
	assert.Equal(t, 1, p.OrderMax())
	assert.Equal(t, product.KindCapped, p.Kind())
}

func TestCapped_WithinLimitButOutOfStock_ReportsInsufficientStock(t *testing.T) {
	p, _ := product.NewCapped("Shipping", price(10), 1, 3)

	_, err := p.Buy(2)

	assert.ErrorIs(t, err, product.ErrInsufficientStock)
}

func TestCapped_LastUnit_Deactivates(t *testing.T) {
	p, _ := product.NewCapped("Shipping", price(10), 1, 1)

	_, err := p.Buy(1)

	require.NoError(t, err)
	assert.False(t, p.IsActive())
}

// ===========================
// Show 測試
// ===========================

func TestShow_Formats(t *testing.T) {
	regular := newRegular(t, "MacBook Air M2", 1450, 100)
	regular.SetPromotion(promotion.NewSecondHalfPrice("Second Half price!"))

	unlimited, _ := product.NewUnlimited("Windows License", price(125))

	capped, _ := product.NewCapped("Shipping", price(10), 250, 1)

	halfPriced, _ := product.New("Cable", decimal.RequireFromString("12.5"), 3)

	assert.Equal(t, "MacBook Air M2, Price: 1450, Quantity: 100, Promotion: Second Half price!", regular.Show())
	assert.Equal(t, "Windows License, Price: 125, Quantity: Unlimited", unlimited.Show())
	assert.Equal(t, "Shipping, Price: 10, Quantity: 250, Limited to 1 per order!", capped.Show())
	assert.Equal(t, "Cable, Price: 12.5, Quantity: 3", halfPriced.Show())
}

// ===========================
// 狀態與事件測試
// ===========================

func TestActivateDeactivate_Toggle(t *testing.T) {
	p := newRegular(t, "testName", 10, 0)

	p.Deactivate()
	assert.False(t, p.IsActive())

	p.Activate()
	assert.True(t, p.IsActive())
}

func TestSetQuantity_Regular(t *testing.T) {
	p := newRegular(t, "testName", 10, 5)

	require.NoError(t, p.SetQuantity(1000))
	assert.Equal(t, 1000, p.Quantity())

	err := p.SetQuantity(-1)
	assert.ErrorIs(t, err, product.ErrInvalidQuantity)
	assert.Equal(t, 1000, p.Quantity())
}

func TestBuy_RecordsEvents(t *testing.T) {
	// Arrange
	p := newRegular(t, "testName", 30, 10)

	// Act
	_, err := p.Buy(10)
	require.NoError(t, err)
	events := p.PullEvents()

	// Assert
	require.Len(t, events, 2)
	assert.Equal(t, "product.purchased", events[0].EventType())
	assert.Equal(t, "product.deactivated", events[1].EventType())
	assert.Equal(t, p.ID().String(), events[0].AggregateID())

	purchased, ok := events[0].(*product.ProductPurchasedEvent)
	require.True(t, ok)
	assert.Equal(t, 10, purchased.Quantity())
	assertAmount(t, "300", purchased.Charge())

	assert.Empty(t, p.PullEvents(), "第二次拉取應該為空")
}
